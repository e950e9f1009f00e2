package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/stridelabs/albumwalk/internal/core/domain"
)

// ErrAlbumNotFound indicates a catalog search returned no results.
var ErrAlbumNotFound = errors.New("album not found")

// NotFoundError carries the query that came up empty.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	if e.Query == "" {
		return ErrAlbumNotFound.Error()
	}
	return fmt.Sprintf("no album found for %q", e.Query)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrAlbumNotFound
}

// AlbumCatalog resolves album names against an external music catalog.
type AlbumCatalog interface {
	// LookupAlbum resolves an album by name, or directly by id when one
	// is given, including the total duration summed over every track.
	LookupAlbum(ctx context.Context, name, id string) (domain.AlbumDetails, error)

	// SearchAlbums returns a short list of candidate albums for a
	// free-text query.
	SearchAlbums(ctx context.Context, query string) ([]domain.AlbumSummary, error)
}
