package spotify

// spotifyAlbum represents an album object from the Spotify API.
type spotifyAlbum struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []spotifyArtist `json:"artists"`
	Images      []spotifyImage  `json:"images"`
	ReleaseDate string          `json:"release_date"`
	TotalTracks int             `json:"total_tracks"`
}

// spotifyArtist represents an artist from the Spotify API.
type spotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type spotifyImage struct {
	URL string `json:"url"`
}

// spotifyTrack is the simplified track object the album-tracks
// endpoint returns.
type spotifyTrack struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DurationMs int64  `json:"duration_ms"`
}

// tracksPage is one page of an album's track list. Next is the
// absolute URL of the following page, or null on the last one.
type tracksPage struct {
	Items []spotifyTrack `json:"items"`
	Next  *string        `json:"next"`
}

// albumSearchResponse wraps the search endpoint's album results.
type albumSearchResponse struct {
	Albums struct {
		Items []spotifyAlbum `json:"items"`
	} `json:"albums"`
}
