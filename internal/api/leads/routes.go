package leads

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all lead endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/leads", h.List)
	mux.HandleFunc("POST /api/leads", h.Create)
	mux.HandleFunc("GET /api/leads/{leadId}", h.Get)
	mux.HandleFunc("PUT /api/leads/{leadId}", h.Update)
	mux.HandleFunc("DELETE /api/leads/{leadId}", h.Delete)
}
