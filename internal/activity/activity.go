package activity

import "math"

const (
	mInKm     = 1000
	minInHour = 60
)

const (
	codeSwimming = "SWM"
	codeRunning  = "RUN"
	codeWalking  = "WLK"
)

// coefficients are the fixed constants of one workout type. Fields a
// formula does not use are left zero.
type coefficients struct {
	lenStep     float64 // metres per step or stroke
	speedCoeff  float64
	speedShift  float64
	weightCoeff float64
}

var coefficientsByCode = map[string]coefficients{
	codeRunning: {
		lenStep:    0.65,
		speedCoeff: 18,
		speedShift: 20,
	},
	codeWalking: {
		lenStep:     0.65,
		speedCoeff:  0.029,
		weightCoeff: 0.035,
	},
	codeSwimming: {
		lenStep:     1.38,
		speedShift:  1.1,
		weightCoeff: 2,
	},
}

// Workout is a single training session that can be summarised.
type Workout interface {
	TrainingType() string
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// Training holds the readings shared by every workout type. It has no
// calorie formula of its own, so it is not a Workout by itself.
type Training struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (t Training) Hours() float64 {
	return t.Duration
}

// distance in km.
func (t Training) distance(c coefficients) float64 {
	return float64(t.Action) * c.lenStep / mInKm
}

// meanSpeed in km/h. A zero Duration yields +Inf (or NaN when the distance
// is zero too); it is not guarded.
func (t Training) meanSpeed(c coefficients) float64 {
	return t.distance(c) / t.Duration
}

type Running struct {
	Training
}

func (Running) TrainingType() string { return "Running" }

func (r Running) Distance() float64 { return r.distance(coefficientsByCode[codeRunning]) }
func (r Running) MeanSpeed() float64 { return r.meanSpeed(coefficientsByCode[codeRunning]) }

func (r Running) SpentCalories() float64 {
	c := coefficientsByCode[codeRunning]
	minutes := r.Duration * minInHour
	return (c.speedCoeff*r.MeanSpeed() - c.speedShift) *
		r.Weight / mInKm * minutes
}

// SportsWalking is walking with poles.
type SportsWalking struct {
	Training
	Height float64 // cm
}

func (SportsWalking) TrainingType() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 { return w.distance(coefficientsByCode[codeWalking]) }
func (w SportsWalking) MeanSpeed() float64 { return w.meanSpeed(coefficientsByCode[codeWalking]) }

// SpentCalories floors speed²/height before applying the coefficient, so for
// everyday speeds and heights the speed term is zero.
func (w SportsWalking) SpentCalories() float64 {
	c := coefficientsByCode[codeWalking]
	speed := w.MeanSpeed()
	return (c.weightCoeff*w.Weight +
		math.Floor(speed*speed/w.Height)*c.speedCoeff*w.Weight) *
		w.Duration * minInHour
}

type Swimming struct {
	Training
	LengthPool float64 // m
	CountPool  int
}

func (Swimming) TrainingType() string { return "Swimming" }

// Distance uses the stroke length. MeanSpeed ignores it and is derived from
// the pool instead.
func (s Swimming) Distance() float64 {
	return s.distance(coefficientsByCode[codeSwimming])
}

func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	c := coefficientsByCode[codeSwimming]
	return (s.MeanSpeed() + c.speedShift) * c.weightCoeff * s.Weight
}

// ShowTrainingInfo computes the summary of w.
func ShowTrainingInfo(w Workout) InfoMessage {
	return InfoMessage{
		TrainingType: w.TrainingType(),
		Duration:     w.Hours(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}
