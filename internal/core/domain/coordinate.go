package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinate is a (longitude, latitude) pair in the order the routing
// API produces them. Display order (lat first) is the caller's problem.
type Coordinate struct {
	Lon float64
	Lat float64
}

// ValidationError reports malformed or out-of-range user input.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// ParseCoordinate parses a user-supplied "latitude,longitude" string.
// Both values must be finite and within valid ranges.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Coordinate{}, &ValidationError{Input: s, Reason: "expected \"lat,lon\""}
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, &ValidationError{Input: s, Reason: "latitude is not a number"}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, &ValidationError{Input: s, Reason: "longitude is not a number"}
	}

	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return Coordinate{}, &ValidationError{Input: s, Reason: "latitude out of range [-90, 90]"}
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return Coordinate{}, &ValidationError{Input: s, Reason: "longitude out of range [-180, 180]"}
	}

	return Coordinate{Lon: lon, Lat: lat}, nil
}
