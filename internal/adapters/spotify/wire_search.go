package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/core/ports"
)

// SearchAlbums returns up to five candidate albums for a free-text
// query, for the picker UI.
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]domain.AlbumSummary, error) {
	albums, err := c.searchAlbums(ctx, query, 5)
	if err != nil {
		return nil, &ports.UpstreamError{Service: "spotify", Err: err}
	}

	results := make([]domain.AlbumSummary, len(albums))
	for i, a := range albums {
		results[i] = mapAlbumToSummary(a)
	}
	return results, nil
}

// searchFirstAlbum resolves an album name to the first search result.
func (c *Client) searchFirstAlbum(ctx context.Context, name string) (spotifyAlbum, error) {
	albums, err := c.searchAlbums(ctx, name, 1)
	if err != nil {
		return spotifyAlbum{}, &ports.UpstreamError{Service: "spotify", Err: err}
	}
	if len(albums) == 0 {
		return spotifyAlbum{}, &ports.NotFoundError{Query: name}
	}
	return albums[0], nil
}

func (c *Client) searchAlbums(ctx context.Context, query string, limit int) ([]spotifyAlbum, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("invalid search url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", "album:"+query)
	q.Set("type", "album")
	q.Set("limit", fmt.Sprintf("%d", limit))
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search status %d", resp.StatusCode)
	}

	var body albumSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("search decode error: %w", err)
	}

	return body.Albums.Items, nil
}
