package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/stridelabs/albumwalk/internal/core/domain"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// forwardGeocode resolves a free-text address to a coordinate using
// /geocode/search.
func (c *Client) forwardGeocode(ctx context.Context, text string) (domain.Coordinate, error) {
	endpoint := c.baseURL + "/geocode/search"

	makeReq := func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", text)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, makeReq)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinate{}, fmt.Errorf("no geocode results for %q", text)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinate{}, fmt.Errorf("invalid coordinate format for %q", text)
	}

	return domain.Coordinate{Lon: coords[0], Lat: coords[1]}, nil
}

// reverseGeocode resolves a coordinate to a human-readable address
// label via /geocode/reverse. A result with no features yields an
// empty label and no error; callers treat that as "no label".
func (c *Client) reverseGeocode(ctx context.Context, coord domain.Coordinate) (string, error) {
	endpoint := c.baseURL + "/geocode/reverse"

	makeReq := func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("point.lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
		q.Set("point.lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, makeReq)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return "", nil
	}

	return decoded.Features[0].Properties.Label, nil
}
