package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/core/ports"
)

// DefaultStartAddress is used when a request does not name one.
const DefaultStartAddress = "4050 17th St, San Francisco, CA"

// TripPlanner composes the album catalog and the route planner into a
// single "album to walking route" operation. It holds no cross-request
// state and performs no retries; collaborator errors propagate up
// wrapped with context.
type TripPlanner struct {
	catalog ports.AlbumCatalog
	routes  ports.RoutePlanner
	log     *zap.Logger
}

// NewTripPlanner constructs a TripPlanner.
func NewTripPlanner(catalog ports.AlbumCatalog, routes ports.RoutePlanner, log *zap.Logger) *TripPlanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &TripPlanner{
		catalog: catalog,
		routes:  routes,
		log:     log,
	}
}

// PlanTrip resolves an album, converts its running time into a walking
// distance, generates a round-trip route from startAddress, and
// assembles the shareable result. albumID is optional; startAddress
// falls back to DefaultStartAddress when empty.
func (p *TripPlanner) PlanTrip(ctx context.Context, albumName, startAddress, albumID string) (domain.TripSummary, error) {
	if albumName == "" && albumID == "" {
		return domain.TripSummary{}, &domain.ValidationError{Input: albumName, Reason: "album name is required"}
	}
	if startAddress == "" {
		startAddress = DefaultStartAddress
	}

	album, err := p.catalog.LookupAlbum(ctx, albumName, albumID)
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("plan trip: resolve album: %w", err)
	}

	label, err := domain.FormatDuration(album.DurationMs)
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("plan trip: format duration: %w", err)
	}

	distanceKm := domain.WalkingDistanceKm(album.DurationMs)
	distanceM := domain.WalkingDistanceMeters(album.DurationMs)
	p.log.Debug("resolved album",
		zap.String("album", album.Name),
		zap.String("artist", album.Artist),
		zap.Int64("duration_ms", album.DurationMs),
		zap.Float64("distance_m", distanceM),
	)

	route, err := p.routes.PlanRoundTrip(ctx, startAddress, distanceM)
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("plan trip: generate route: %w", err)
	}

	sampled := domain.Downsample(route.Geometry, domain.DefaultMaxWaypoints)

	return domain.TripSummary{
		Album:         album,
		DurationLabel: label,
		DistanceKm:    math.Round(distanceKm*100) / 100,
		MapsURL:       domain.MapsURL(sampled),
		StartAddress:  route.ResolvedAddress,
		Preview:       domain.PreviewPoints(sampled),
		EmbedHTML:     route.EmbedHTML,
	}, nil
}

// SearchAlbums passes a free-text query through to the catalog.
func (p *TripPlanner) SearchAlbums(ctx context.Context, query string) ([]domain.AlbumSummary, error) {
	if query == "" {
		return nil, &domain.ValidationError{Input: query, Reason: "query is required"}
	}

	results, err := p.catalog.SearchAlbums(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search albums: %w", err)
	}
	return results, nil
}
