package rest

import "net/http"

type mapsConfigResponse struct {
	GoogleMapsAPIKey          string `json:"google_maps_api_key"`
	PlacesAutocompleteEnabled bool   `json:"places_autocomplete_enabled"`
}

// MapsConfig handles GET /maps_config. The key is a client-side map
// rendering key; autocomplete in the frontend is enabled only when one
// is configured.
func (h *Handler) MapsConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapsConfigResponse{
		GoogleMapsAPIKey:          h.maps.GoogleMapsAPIKey,
		PlacesAutocompleteEnabled: h.maps.GoogleMapsAPIKey != "",
	})
}
