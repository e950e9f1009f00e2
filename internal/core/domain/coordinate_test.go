package domain

import (
	"errors"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Coordinate
		isErr bool
	}{
		{name: "plain pair", input: "37.78,-122.41", want: Coordinate{Lon: -122.41, Lat: 37.78}},
		{name: "with spaces", input: " 37.78 , -122.41 ", want: Coordinate{Lon: -122.41, Lat: 37.78}},
		{name: "integers", input: "45,90", want: Coordinate{Lon: 90, Lat: 45}},
		{name: "free text", input: "4050 17th St, San Francisco, CA", isErr: true},
		{name: "single value", input: "37.78", isErr: true},
		{name: "three values", input: "37.78,-122.41,5", isErr: true},
		{name: "latitude out of range", input: "91,-122.41", isErr: true},
		{name: "longitude out of range", input: "37.78,-181", isErr: true},
		{name: "empty", input: "", isErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCoordinate(tc.input)
			if (err != nil) != tc.isErr {
				t.Fatalf("unexpected error state: got err=%v", err)
			}
			if err != nil {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				return
			}
			if got != tc.want {
				t.Errorf("ParseCoordinate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
