package spotify

import (
	"strconv"

	"github.com/stridelabs/albumwalk/internal/core/domain"
)

// mapAlbumToDomain converts a raw Spotify album plus a summed track
// duration to a clean domain album.
func mapAlbumToDomain(sa spotifyAlbum, durationMs int64) domain.AlbumDetails {
	return domain.AlbumDetails{
		ID:          sa.ID,
		Name:        sa.Name,
		Artist:      primaryArtist(sa),
		DurationMs:  durationMs,
		TrackCount:  sa.TotalTracks,
		ReleaseYear: releaseYear(sa.ReleaseDate),
		ImageURL:    coverURL(sa),
	}
}

// mapAlbumToSummary converts a raw Spotify album to the short search
// result form.
func mapAlbumToSummary(sa spotifyAlbum) domain.AlbumSummary {
	return domain.AlbumSummary{
		ID:       sa.ID,
		Name:     sa.Name,
		Artist:   primaryArtist(sa),
		ImageURL: coverURL(sa),
	}
}

func primaryArtist(sa spotifyAlbum) string {
	if len(sa.Artists) == 0 {
		return ""
	}
	return sa.Artists[0].Name
}

func coverURL(sa spotifyAlbum) string {
	if len(sa.Images) == 0 {
		return ""
	}
	return sa.Images[0].URL
}

// releaseYear extracts the four-digit year from Spotify's release_date,
// which comes with day, month, or year precision.
func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
