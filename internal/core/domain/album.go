package domain

// AlbumDetails is the resolved catalog metadata for one album.
// Immutable once constructed; lives for a single request.
type AlbumDetails struct {
	ID          string
	Name        string
	Artist      string
	DurationMs  int64
	TrackCount  int
	ReleaseYear int // 0 when unknown
	ImageURL    string
}

// AlbumSummary is the short form returned by catalog search,
// enough for a picker UI.
type AlbumSummary struct {
	ID       string
	Name     string
	Artist   string
	ImageURL string
}

// Track is a single album track. The CLI lists these; the planner
// only cares about the summed durations.
type Track struct {
	Name       string
	DurationMs int64
}
