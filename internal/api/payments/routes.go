package payments

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all payment endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/payments", h.List)
	mux.HandleFunc("POST /api/payments", h.Create)
	mux.HandleFunc("GET /api/payments/{paymentId}", h.Get)
	mux.HandleFunc("PUT /api/payments/{paymentId}", h.Update)
	mux.HandleFunc("DELETE /api/payments/{paymentId}", h.Delete)
}
