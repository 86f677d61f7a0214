package activity

import (
	"fmt"
	"os"

	"github.com/tkrajina/gpxgo/gpx"
)

// DurationFromGPX returns the elapsed time of a GPX recording in hours.
func DurationFromGPX(gpxBytes []byte) (float64, error) {
	g, err := gpx.ParseBytes(gpxBytes)
	if err != nil {
		return 0, fmt.Errorf("error parsing gpx: %w", err)
	}

	if len(g.Tracks) == 0 {
		return 0, fmt.Errorf("gpx has no tracks")
	}

	seconds := g.Duration()
	if seconds <= 0 {
		return 0, fmt.Errorf("gpx has no timed points")
	}

	return seconds / 3600, nil
}

// DurationFromGPXFile reads path and returns its recording's elapsed time in hours.
func DurationFromGPXFile(path string) (float64, error) {
	gpxBytes, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading gpx file: %w", err)
	}

	return DurationFromGPX(gpxBytes)
}
