package domain

import (
	"reflect"
	"testing"
)

func syntheticRoute(n int) []Coordinate {
	route := make([]Coordinate, n)
	for i := range route {
		route[i] = Coordinate{Lon: -122.0 + float64(i)*0.001, Lat: 37.0 + float64(i)*0.001}
	}
	return route
}

func TestDownsampleKeepsEndsAndLimitsSize(t *testing.T) {
	tests := []struct {
		name  string
		count int
		max   int
	}{
		{name: "tiny", count: 2, max: 23},
		{name: "short", count: 10, max: 23},
		{name: "at limit", count: 25, max: 23},
		{name: "just over limit", count: 26, max: 23},
		{name: "awkward stride", count: 30, max: 23},
		{name: "medium", count: 50, max: 23},
		{name: "double stride boundary", count: 52, max: 23},
		{name: "long", count: 100, max: 23},
		{name: "very long", count: 1000, max: 23},
		{name: "small max", count: 100, max: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			route := syntheticRoute(tc.count)
			out := Downsample(route, tc.max)

			if len(out) > tc.max+2 {
				t.Errorf("len = %d, want <= %d", len(out), tc.max+2)
			}
			if out[0] != route[0] {
				t.Errorf("first point changed: got %v, want %v", out[0], route[0])
			}
			if out[len(out)-1] != route[len(route)-1] {
				t.Errorf("last point changed: got %v, want %v", out[len(out)-1], route[len(route)-1])
			}
		})
	}
}

func TestDownsampleShortInputUnchanged(t *testing.T) {
	route := syntheticRoute(10)
	out := Downsample(route, 23)
	if !reflect.DeepEqual(out, route) {
		t.Errorf("short input should be returned unchanged")
	}
}

func TestDownsampleDeterministic(t *testing.T) {
	route := syntheticRoute(500)
	first := Downsample(route, 23)
	second := Downsample(route, 23)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different output")
	}
}

func TestDownsampleDoesNotMutateInput(t *testing.T) {
	route := syntheticRoute(100)
	want := syntheticRoute(100)
	Downsample(route, 23)
	if !reflect.DeepEqual(route, want) {
		t.Errorf("input slice was mutated")
	}
}

func TestDownsampleEmpty(t *testing.T) {
	if out := Downsample(nil, 23); len(out) != 0 {
		t.Errorf("nil input: got %v, want empty", out)
	}
}
