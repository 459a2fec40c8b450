package units

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all unit endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/units", h.List)
	mux.HandleFunc("POST /api/units", h.Create)
	mux.HandleFunc("GET /api/units/{unitId}", h.Get)
	mux.HandleFunc("PUT /api/units/{unitId}", h.Update)
	mux.HandleFunc("DELETE /api/units/{unitId}", h.Delete)

	mux.HandleFunc("GET /api/units/{unitId}/appliances", h.ListAppliances)
	mux.HandleFunc("GET /api/units/{unitId}/leases", h.ListLeases)
	mux.HandleFunc("GET /api/units/{unitId}/maintenance-requests", h.ListMaintenanceRequests)
}
