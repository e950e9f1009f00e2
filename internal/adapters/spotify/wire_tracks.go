package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/core/ports"
)

// ListAlbumTracks returns every track of an album in order. The CLI
// uses this to print the track list.
func (c *Client) ListAlbumTracks(ctx context.Context, albumID string) ([]domain.Track, error) {
	raw, err := c.fetchAllTracks(ctx, albumID)
	if err != nil {
		return nil, &ports.UpstreamError{Service: "spotify", Err: err}
	}

	tracks := make([]domain.Track, len(raw))
	for i, t := range raw {
		tracks[i] = domain.Track{Name: t.Name, DurationMs: t.DurationMs}
	}
	return tracks, nil
}

// fetchAllTracks follows pagination until the final page. Summing a
// partial track list undercounts the album duration, so every page is
// fetched before the caller sees anything.
func (c *Client) fetchAllTracks(ctx context.Context, albumID string) ([]spotifyTrack, error) {
	next := fmt.Sprintf("%s/albums/%s/tracks?limit=50", c.baseURL, albumID)

	var tracks []spotifyTrack
	for next != "" {
		page, err := c.fetchTracksPage(ctx, next)
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, page.Items...)

		next = ""
		if page.Next != nil {
			next = *page.Next
		}
	}

	return tracks, nil
}

func (c *Client) fetchTracksPage(ctx context.Context, pageURL string) (tracksPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return tracksPage{}, fmt.Errorf("create tracks request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return tracksPage{}, fmt.Errorf("tracks request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tracksPage{}, fmt.Errorf("tracks status %d", resp.StatusCode)
	}

	var page tracksPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return tracksPage{}, fmt.Errorf("tracks decode error: %w", err)
	}

	return page, nil
}
