package ports

import (
	"context"

	"github.com/stridelabs/albumwalk/internal/core/domain"
)

// RoutePlanner generates round-trip walking routes of a target length.
type RoutePlanner interface {
	// PlanRoundTrip resolves start (a free-text address or a raw
	// "lat,lon" string) to a starting point and requests a closed
	// walking loop of approximately distanceMeters.
	PlanRoundTrip(ctx context.Context, start string, distanceMeters float64) (domain.RouteResult, error)
}
