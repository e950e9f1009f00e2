package domain

// walkingSpeedKmh is the assumed pace used to turn listening time into
// walking distance. Changing it breaks compatibility with every link
// ever generated, so don't.
const walkingSpeedKmh = 2.5

// WalkingDistanceKm converts an album duration in milliseconds to the
// distance in kilometers covered at the fixed walking speed.
func WalkingDistanceKm(ms int64) float64 {
	return float64(ms) / 3_600_000 * walkingSpeedKmh
}

// WalkingDistanceMeters is WalkingDistanceKm expressed in meters, the
// unit the routing API wants for round-trip lengths.
func WalkingDistanceMeters(ms int64) float64 {
	return WalkingDistanceKm(ms) * 1000
}
