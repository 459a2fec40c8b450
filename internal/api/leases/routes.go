package leases

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all lease endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/leases", h.List)
	mux.HandleFunc("POST /api/leases", h.Create)
	mux.HandleFunc("GET /api/leases/{leaseId}", h.Get)
	mux.HandleFunc("PUT /api/leases/{leaseId}", h.Update)
	mux.HandleFunc("DELETE /api/leases/{leaseId}", h.Delete)
	mux.HandleFunc("GET /api/leases/{leaseId}/payments", h.ListPayments)
}
