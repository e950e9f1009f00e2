package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stridelabs/albumwalk/internal/core/domain"
	"github.com/stridelabs/albumwalk/internal/core/ports"
)

// --- Mocks ---

type mockTripService struct {
	summary domain.TripSummary
	albums  []domain.AlbumSummary
	planErr error
	findErr error

	gotAlbumName    string
	gotStartAddress string
	gotAlbumID      string
	gotQuery        string
}

func (m *mockTripService) PlanTrip(ctx context.Context, albumName, startAddress, albumID string) (domain.TripSummary, error) {
	m.gotAlbumName = albumName
	m.gotStartAddress = startAddress
	m.gotAlbumID = albumID
	if m.planErr != nil {
		return domain.TripSummary{}, m.planErr
	}
	return m.summary, nil
}

func (m *mockTripService) SearchAlbums(ctx context.Context, query string) ([]domain.AlbumSummary, error) {
	m.gotQuery = query
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.albums, nil
}

func sampleSummary() domain.TripSummary {
	return domain.TripSummary{
		Album: domain.AlbumDetails{
			ID:          "alb1",
			Name:        "OK Computer",
			Artist:      "Radiohead",
			DurationMs:  3199000,
			TrackCount:  12,
			ReleaseYear: 1997,
			ImageURL:    "https://i.scdn.co/image/cover",
		},
		DurationLabel: "53:19",
		DistanceKm:    2.22,
		MapsURL:       "https://www.google.com/maps/dir/37.78,-122.4/37.79,-122.41/",
		StartAddress:  "4050 17th St, San Francisco, CA",
		Preview: []domain.PreviewPoint{
			{Lat: 37.78, Lon: -122.4},
			{Lat: 37.79, Lon: -122.41},
		},
		EmbedHTML: "<html>map</html>",
	}
}

// --- Tests ---

func TestHandler_GenerateRoute(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		planErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success: returns trip summary",
			target:         "/generate_route?album_name=OK+Computer",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"success"`,
		},
		{
			name:           "Bad Request: missing album_name and album_id",
			target:         "/generate_route?start_address=somewhere",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "album_name is required",
		},
		{
			name:           "Bad Request: album not found",
			target:         "/generate_route?album_name=does+not+exist",
			planErr:        &ports.NotFoundError{Query: "does not exist"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"status":"error"`,
		},
		{
			name:           "Bad Request: upstream failure",
			target:         "/generate_route?album_name=OK+Computer",
			planErr:        &ports.UpstreamError{Service: "openrouteservice", Err: http.ErrHandlerTimeout},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "openrouteservice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockTripService{summary: sampleSummary(), planErr: tt.planErr}
			h := NewHandler(svc, MapsConfig{}, nil, "", nil)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("Status Code: got %d, want %d, body: %s", rec.Code, tt.expectedStatus, strings.TrimSpace(rec.Body.String()))
			}
			if !strings.Contains(rec.Body.String(), tt.expectedBody) {
				t.Errorf("Response Body: got %q, want substring %q", rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandler_GenerateRouteResponseShape(t *testing.T) {
	svc := &mockTripService{summary: sampleSummary()}
	h := NewHandler(svc, MapsConfig{}, nil, "", nil)

	req := httptest.NewRequest(http.MethodGet,
		"/generate_route?album_name=OK+Computer&start_address=1+Market+St&album_id=alb1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if svc.gotAlbumName != "OK Computer" || svc.gotStartAddress != "1 Market St" || svc.gotAlbumID != "alb1" {
		t.Errorf("query params not forwarded: got (%q, %q, %q)", svc.gotAlbumName, svc.gotStartAddress, svc.gotAlbumID)
	}

	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// 3199000 ms is 53.3 minutes, rounded to 53.
	if mins, _ := got["length_minutes"].(float64); mins != 53 {
		t.Errorf("length_minutes: got %v, want 53", got["length_minutes"])
	}
	if got["album_duration_label"] != "53:19" {
		t.Errorf("album_duration_label: got %v", got["album_duration_label"])
	}
	if got["distance_km"] != 2.22 {
		t.Errorf("distance_km: got %v", got["distance_km"])
	}
	if got["maps_url"] != "https://www.google.com/maps/dir/37.78,-122.4/37.79,-122.41/" {
		t.Errorf("maps_url: got %v", got["maps_url"])
	}
	preview, ok := got["route_preview"].([]any)
	if !ok || len(preview) != 2 {
		t.Fatalf("route_preview: got %v", got["route_preview"])
	}
	first, _ := preview[0].(map[string]any)
	if first["lat"] != 37.78 || first["lon"] != -122.4 {
		t.Errorf("route_preview[0]: got %v", first)
	}
	if got["map_embed_html"] != "<html>map</html>" {
		t.Errorf("map_embed_html: got %v", got["map_embed_html"])
	}
}

func TestHandler_SearchAlbums(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		albums         []domain.AlbumSummary
		findErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success: returns results",
			target: "/search_albums?query=radiohead",
			albums: []domain.AlbumSummary{
				{ID: "a1", Name: "OK Computer", Artist: "Radiohead", ImageURL: "https://img"},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"OK Computer"`,
		},
		{
			name:           "Bad Request: missing query",
			target:         "/search_albums",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "query is required",
		},
		{
			name:           "Bad Request: service failure keeps results array",
			target:         "/search_albums?query=radiohead",
			findErr:        &ports.UpstreamError{Service: "spotify", Err: http.ErrHandlerTimeout},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"results":[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockTripService{albums: tt.albums, findErr: tt.findErr}
			h := NewHandler(svc, MapsConfig{}, nil, "", nil)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("Status Code: got %d, want %d", rec.Code, tt.expectedStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedBody) {
				t.Errorf("Response Body: got %q, want substring %q", rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandler_MapsConfig(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		expectedBody string
	}{
		{
			name:         "key configured enables autocomplete",
			key:          "maps-key",
			expectedBody: `"places_autocomplete_enabled":true`,
		},
		{
			name:         "no key disables autocomplete",
			key:          "",
			expectedBody: `"places_autocomplete_enabled":false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockTripService{}, MapsConfig{GoogleMapsAPIKey: tt.key}, nil, "", nil)

			req := httptest.NewRequest(http.MethodGet, "/maps_config", nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("Status Code: got %d, want %d", rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedBody) {
				t.Errorf("Response Body: got %q, want substring %q", rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandler_HealthCheck(t *testing.T) {
	h := NewHandler(&mockTripService{}, MapsConfig{}, nil, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Status Code: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("Response Body: got %q", rec.Body.String())
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	h := NewHandler(&mockTripService{}, MapsConfig{}, nil, "", nil)

	req := httptest.NewRequest(http.MethodOptions, "/generate_route", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Status Code: got %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want %q", got, "*")
	}
}

func TestHandler_RequestIDHeader(t *testing.T) {
	h := NewHandler(&mockTripService{}, MapsConfig{}, nil, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}
