package rest

import "net/http"

type albumResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Image  string `json:"image,omitempty"`
}

type searchAlbumsResponse struct {
	Results []albumResult `json:"results"`
	Error   string        `json:"error,omitempty"`
}

// SearchAlbums handles GET /search_albums. Errors keep the results
// array present (empty) so the frontend can render without branching.
func (h *Handler) SearchAlbums(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, searchAlbumsResponse{
			Results: []albumResult{},
			Error:   "query is required",
		})
		return
	}

	albums, err := h.svc.SearchAlbums(r.Context(), query)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, searchAlbumsResponse{
			Results: []albumResult{},
			Error:   err.Error(),
		})
		return
	}

	results := make([]albumResult, len(albums))
	for i, a := range albums {
		results[i] = albumResult{
			ID:     a.ID,
			Name:   a.Name,
			Artist: a.Artist,
			Image:  a.ImageURL,
		}
	}

	writeJSON(w, http.StatusOK, searchAlbumsResponse{Results: results})
}
