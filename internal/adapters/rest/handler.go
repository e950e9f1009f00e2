// Package rest exposes the trip planner over HTTP and serves the
// static frontend.
package rest

import (
	"context"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/worker"
)

// TripService is the slice of the orchestrator the HTTP adapter needs.
type TripService interface {
	PlanTrip(ctx context.Context, albumName, startAddress, albumID string) (domain.TripSummary, error)
	SearchAlbums(ctx context.Context, query string) ([]domain.AlbumSummary, error)
}

// MapsConfig is the client-side map rendering configuration exposed at
// /maps_config.
type MapsConfig struct {
	GoogleMapsAPIKey string
}

// Handler manages the HTTP interface for the application.
type Handler struct {
	svc       TripService
	maps      MapsConfig
	artifacts *worker.ArtifactPool // optional; nil disables map persistence
	webDir    string               // optional; "" disables the static frontend
	log       *zap.Logger
	router    *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc TripService, maps MapsConfig, artifacts *worker.ArtifactPool, webDir string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		svc:       svc,
		maps:      maps,
		artifacts: artifacts,
		webDir:    webDir,
		log:       log,
		router:    http.NewServeMux(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface, wrapping the router
// with CORS and request logging.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withCORS(h.requestLogger(h.router)).ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)
	h.router.HandleFunc("GET /generate_route", h.GenerateRoute)
	h.router.HandleFunc("GET /search_albums", h.SearchAlbums)
	h.router.HandleFunc("GET /maps_config", h.MapsConfig)

	if h.webDir != "" {
		h.router.Handle("GET /static/", http.StripPrefix("/static/",
			http.FileServer(http.Dir(filepath.Join(h.webDir, "static")))))
		h.router.HandleFunc("GET /{$}", h.Index)
	}
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Index serves the frontend entry page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.webDir, "index.html"))
}
