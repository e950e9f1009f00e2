package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/core/ports"
)

// LookupAlbum resolves an album by name (first search result) or
// directly by id when one is given, then fetches the full track list
// and sums the durations.
func (c *Client) LookupAlbum(ctx context.Context, name, id string) (domain.AlbumDetails, error) {
	var album spotifyAlbum
	var err error

	if id != "" {
		album, err = c.getAlbum(ctx, id)
		if err != nil {
			return domain.AlbumDetails{}, &ports.UpstreamError{Service: "spotify", Err: err}
		}
	} else {
		album, err = c.searchFirstAlbum(ctx, name)
		if err != nil {
			return domain.AlbumDetails{}, err
		}
	}

	tracks, err := c.fetchAllTracks(ctx, album.ID)
	if err != nil {
		return domain.AlbumDetails{}, &ports.UpstreamError{Service: "spotify", Err: err}
	}

	var durationMs int64
	for _, t := range tracks {
		durationMs += t.DurationMs
	}

	return mapAlbumToDomain(album, durationMs), nil
}

func (c *Client) getAlbum(ctx context.Context, id string) (spotifyAlbum, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/albums/"+id, nil)
	if err != nil {
		return spotifyAlbum{}, fmt.Errorf("create album request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return spotifyAlbum{}, fmt.Errorf("album request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return spotifyAlbum{}, fmt.Errorf("album status %d", resp.StatusCode)
	}

	var album spotifyAlbum
	if err := json.NewDecoder(resp.Body).Decode(&album); err != nil {
		return spotifyAlbum{}, fmt.Errorf("album decode error: %w", err)
	}

	return album, nil
}
