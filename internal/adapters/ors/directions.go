package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stridelabs/albumwalk/internal/core/domain"
)

type directionsRequest struct {
	Coordinates  [][]float64       `json:"coordinates"`
	Instructions bool              `json:"instructions"`
	Options      directionsOptions `json:"options"`
}

type directionsOptions struct {
	AvoidFeatures []string      `json:"avoid_features"`
	ProfileParams profileParams `json:"profile_params"`
	RoundTrip     roundTripSpec `json:"round_trip"`
}

type profileParams struct {
	Weightings weightings `json:"weightings"`
}

type weightings struct {
	Green float64 `json:"green"`
	Quiet float64 `json:"quiet"`
}

type roundTripSpec struct {
	Length float64 `json:"length"`
	Points int     `json:"points"`
	Seed   int     `json:"seed"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// roundTrip requests a closed walking loop of approximately length
// meters starting at coord, and returns the route geometry. Fords and
// ferries are always excluded and the route is weighted for greenness
// over quietness.
func (c *Client) roundTrip(ctx context.Context, coord domain.Coordinate, length float64, points int) ([]domain.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, c.profile)

	body := directionsRequest{
		Coordinates:  [][]float64{{coord.Lon, coord.Lat}},
		Instructions: true,
		Options: directionsOptions{
			AvoidFeatures: []string{"fords", "ferries"},
			ProfileParams: profileParams{Weightings: weightings{Green: 1, Quiet: 0}},
			RoundTrip: roundTripSpec{
				Length: length,
				Points: points,
				Seed:   c.seed(),
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode directions request: %w", err)
	}

	makeReq := func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	}

	resp, err := c.doWithRetry(ctx, makeReq)
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return nil, fmt.Errorf("directions returned no routes")
	}

	raw := decoded.Features[0].Geometry.Coordinates
	geometry := make([]domain.Coordinate, 0, len(raw))
	for _, pair := range raw {
		if len(pair) < 2 {
			return nil, fmt.Errorf("directions returned malformed coordinate")
		}
		geometry = append(geometry, domain.Coordinate{Lon: pair[0], Lat: pair[1]})
	}

	return geometry, nil
}
