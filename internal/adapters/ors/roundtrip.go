package ors

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/core/ports"
)

// PlanRoundTrip resolves start to a coordinate and requests a closed
// walking loop of approximately distanceMeters.
//
// A start that parses as a valid "lat,lon" pair is reverse-geocoded
// first; when that yields an address label the route is generated from
// the label like any other address. When reverse geocoding fails or
// returns nothing, the route is generated directly from the parsed
// coordinate and the raw input string is kept as the resolved address
// unchanged.
func (c *Client) PlanRoundTrip(ctx context.Context, start string, distanceMeters float64) (domain.RouteResult, error) {
	if distanceMeters < 0 {
		return domain.RouteResult{}, &domain.ValidationError{
			Input:  fmt.Sprintf("%v", distanceMeters),
			Reason: "route distance must not be negative",
		}
	}

	if coord, err := domain.ParseCoordinate(start); err == nil {
		label, rerr := c.reverseGeocode(ctx, coord)
		if rerr != nil || label == "" {
			if rerr != nil {
				c.log.Warn("reverse geocoding failed, routing from raw coordinate",
					zap.String("start", start),
					zap.Error(rerr),
				)
			}
			geometry, err := c.roundTrip(ctx, coord, distanceMeters, coordinateRoutePoints)
			if err != nil {
				return domain.RouteResult{}, &ports.UpstreamError{Service: "openrouteservice", Err: err}
			}
			return domain.RouteResult{
				Geometry:        geometry,
				ResolvedAddress: start,
				EmbedHTML:       c.renderEmbed(geometry),
			}, nil
		}
		start = label
	}

	coord, err := c.forwardGeocode(ctx, start)
	if err != nil {
		return domain.RouteResult{}, &ports.UpstreamError{Service: "openrouteservice", Err: err}
	}

	geometry, err := c.roundTrip(ctx, coord, distanceMeters, addressRoutePoints)
	if err != nil {
		return domain.RouteResult{}, &ports.UpstreamError{Service: "openrouteservice", Err: err}
	}

	return domain.RouteResult{
		Geometry:        geometry,
		ResolvedAddress: start,
		EmbedHTML:       c.renderEmbed(geometry),
	}, nil
}

// renderEmbed builds the inline map document for the full geometry.
// Rendering is best-effort: a failure degrades to no embed and never
// fails the route request.
func (c *Client) renderEmbed(geometry []domain.Coordinate) string {
	html, err := buildLeafletMap(geometry)
	if err != nil {
		c.log.Warn("map embed rendering failed", zap.Error(err))
		return ""
	}
	return html
}
