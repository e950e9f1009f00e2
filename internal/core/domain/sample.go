package domain

// DefaultMaxWaypoints caps the intermediate points in a Google Maps
// directions link; the URL gets rejected beyond that.
const DefaultMaxWaypoints = 23

// Downsample reduces an ordered route geometry to at most max+2 points
// while always preserving the exact first and last coordinate. Short
// inputs are returned unchanged. The result is deterministic for
// identical input.
func Downsample(coords []Coordinate, max int) []Coordinate {
	if max < 1 {
		max = DefaultMaxWaypoints
	}
	if len(coords) <= max+2 {
		return coords
	}

	step := len(coords) / (max + 1)
	if step < 1 {
		step = 1
	}

	sampled := make([]Coordinate, 0, max+2)
	for i := 0; i < len(coords) && len(sampled) < max+2; i += step {
		sampled = append(sampled, coords[i])
	}

	// Stride sampling can miss the true endpoint; replace, never append,
	// so the size bound still holds.
	sampled[len(sampled)-1] = coords[len(coords)-1]

	return sampled
}
