package tenants

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all tenant endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/tenants", h.List)
	mux.HandleFunc("POST /api/tenants", h.Create)
	mux.HandleFunc("GET /api/tenants/{tenantId}", h.Get)
	mux.HandleFunc("PUT /api/tenants/{tenantId}", h.Update)
	mux.HandleFunc("DELETE /api/tenants/{tenantId}", h.Delete)
	mux.HandleFunc("GET /api/tenants/{tenantId}/leases", h.ListLeases)
}
