package domain

import (
	"math"
	"testing"
)

func TestWalkingDistanceConversion(t *testing.T) {
	tests := []struct {
		name    string
		ms      int64
		wantKm  float64
		wantM   float64
	}{
		{name: "30 minute album", ms: 30 * 60 * 1000, wantKm: 1.25, wantM: 1250.0},
		{name: "60 minute album", ms: 60 * 60 * 1000, wantKm: 2.5, wantM: 2500.0},
		{name: "zero length album", ms: 0, wantKm: 0, wantM: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WalkingDistanceKm(tc.ms); math.Abs(got-tc.wantKm) > 1e-9 {
				t.Errorf("WalkingDistanceKm(%d) = %v, want %v", tc.ms, got, tc.wantKm)
			}
			if got := WalkingDistanceMeters(tc.ms); math.Abs(got-tc.wantM) > 1e-9 {
				t.Errorf("WalkingDistanceMeters(%d) = %v, want %v", tc.ms, got, tc.wantM)
			}
		})
	}
}
