package domain

// RouteResult is a generated round-trip walking route: the full
// geometry (first and last point identical), the human-readable
// starting address the route was resolved from, and an optional
// self-contained map document. Lives for a single request.
type RouteResult struct {
	Geometry        []Coordinate
	ResolvedAddress string
	EmbedHTML       string // empty when map rendering was skipped or failed
}

// PreviewPoint is a downsampled coordinate re-expressed for client
// display, latitude first.
type PreviewPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PreviewPoints converts a coordinate sequence into display points,
// preserving order.
func PreviewPoints(coords []Coordinate) []PreviewPoint {
	points := make([]PreviewPoint, len(coords))
	for i, c := range coords {
		points[i] = PreviewPoint{Lat: c.Lat, Lon: c.Lon}
	}
	return points
}

// TripSummary is the assembled response for one album walk request.
// Never persisted.
type TripSummary struct {
	Album         AlbumDetails
	DurationLabel string
	DistanceKm    float64 // rounded to 2 decimals
	MapsURL       string
	StartAddress  string
	Preview       []PreviewPoint
	EmbedHTML     string
}
