package maintenance

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all maintenance request endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/maintenance-requests", h.List)
	mux.HandleFunc("POST /api/maintenance-requests", h.Create)
	mux.HandleFunc("GET /api/maintenance-requests/{requestId}", h.Get)
	mux.HandleFunc("PUT /api/maintenance-requests/{requestId}", h.Update)
	mux.HandleFunc("DELETE /api/maintenance-requests/{requestId}", h.Delete)
}
