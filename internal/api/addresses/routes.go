package addresses

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all address endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/addresses", h.List)
	mux.HandleFunc("POST /api/addresses", h.Create)
	mux.HandleFunc("GET /api/addresses/{addressId}", h.Get)
	mux.HandleFunc("PUT /api/addresses/{addressId}", h.Update)
	mux.HandleFunc("DELETE /api/addresses/{addressId}", h.Delete)
}
