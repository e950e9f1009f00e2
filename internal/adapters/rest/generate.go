package rest

import (
	"math"
	"net/http"

	"github.com/google/uuid"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/worker"
)

type generateRouteResponse struct {
	Status        string                `json:"status"`
	AlbumName     string                `json:"album_name"`
	AlbumID       string                `json:"album_id"`
	Artist        string                `json:"artist"`
	LengthMinutes int64                 `json:"length_minutes"`
	DurationLabel string                `json:"album_duration_label"`
	TrackCount    int                   `json:"track_count"`
	ReleaseYear   int                   `json:"release_year,omitempty"`
	AlbumImageURL string                `json:"album_image_url,omitempty"`
	DistanceKm    float64               `json:"distance_km"`
	MapsURL       string                `json:"maps_url"`
	StartAddress  string                `json:"start_address"`
	RoutePreview  []domain.PreviewPoint `json:"route_preview"`
	MapEmbedHTML  string                `json:"map_embed_html,omitempty"`
}

// GenerateRoute handles GET /generate_route. Every planner error maps
// to a 400 with a string detail, matching the original API.
func (h *Handler) GenerateRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	albumName := q.Get("album_name")
	startAddress := q.Get("start_address")
	albumID := q.Get("album_id")

	if albumName == "" && albumID == "" {
		writeError(w, http.StatusBadRequest, "album_name is required")
		return
	}

	summary, err := h.svc.PlanTrip(r.Context(), albumName, startAddress, albumID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.artifacts != nil && summary.EmbedHTML != "" {
		h.artifacts.Submit(worker.Artifact{
			Name: uuid.NewString(),
			HTML: summary.EmbedHTML,
		})
	}

	writeJSON(w, http.StatusOK, generateRouteResponse{
		Status:        "success",
		AlbumName:     summary.Album.Name,
		AlbumID:       summary.Album.ID,
		Artist:        summary.Album.Artist,
		LengthMinutes: int64(math.Round(float64(summary.Album.DurationMs) / 60000)),
		DurationLabel: summary.DurationLabel,
		TrackCount:    summary.Album.TrackCount,
		ReleaseYear:   summary.Album.ReleaseYear,
		AlbumImageURL: summary.Album.ImageURL,
		DistanceKm:    summary.DistanceKm,
		MapsURL:       summary.MapsURL,
		StartAddress:  summary.StartAddress,
		RoutePreview:  summary.Preview,
		MapEmbedHTML:  summary.EmbedHTML,
	})
}
