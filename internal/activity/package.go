package activity

import (
	"fmt"
	"math"
	"sort"
)

// UnsupportedWorkoutError is returned for an unknown workout code.
type UnsupportedWorkoutError struct {
	Code string
}

func (e *UnsupportedWorkoutError) Error() string {
	return fmt.Sprintf("%s is not supported", e.Code)
}

// ArityError is returned when a package carries the wrong number of readings
// for its workout type.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d readings, got %d", e.Code, e.Want, e.Got)
}

// CountError is returned when a step, stroke or pool length count is not a
// whole number that fits an int.
type CountError struct {
	Code  string
	Field string
	Value float64
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%s %s must be a whole number, got %v", e.Code, e.Field, e.Value)
}

type variant struct {
	fields int
	build  func(t Training, extra []float64) (Workout, error)
}

// Readings are positional: action, duration, weight, then the type's own
// fields in declaration order.
var variants = map[string]variant{
	codeSwimming: {
		fields: 5,
		build: func(t Training, extra []float64) (Workout, error) {
			count, err := toCount(codeSwimming, "pool count", extra[1])
			if err != nil {
				return nil, err
			}
			return Swimming{Training: t, LengthPool: extra[0], CountPool: count}, nil
		},
	},
	codeRunning: {
		fields: 3,
		build: func(t Training, _ []float64) (Workout, error) {
			return Running{Training: t}, nil
		},
	},
	codeWalking: {
		fields: 4,
		build: func(t Training, extra []float64) (Workout, error) {
			return SportsWalking{Training: t, Height: extra[0]}, nil
		},
	},
}

// Codes lists the supported workout codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(variants))
	for code := range variants {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ReadPackage builds the workout described by a sensor package.
func ReadPackage(code string, data []float64) (Workout, error) {
	v, ok := variants[code]
	if !ok {
		return nil, &UnsupportedWorkoutError{Code: code}
	}
	if len(data) != v.fields {
		return nil, &ArityError{Code: code, Want: v.fields, Got: len(data)}
	}

	action, err := toCount(code, "action", data[0])
	if err != nil {
		return nil, err
	}

	t := Training{
		Action:   action,
		Duration: data[1],
		Weight:   data[2],
	}
	return v.build(t, data[3:])
}

func toCount(code, field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
		v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &CountError{Code: code, Field: field, Value: v}
	}
	return int(v), nil
}
