package properties

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all property endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/properties", h.List)
	mux.HandleFunc("POST /api/properties", h.Create)
	mux.HandleFunc("GET /api/properties/{propertyId}", h.Get)
	mux.HandleFunc("PUT /api/properties/{propertyId}", h.Update)
	mux.HandleFunc("DELETE /api/properties/{propertyId}", h.Delete)

	mux.HandleFunc("GET /api/properties/{propertyId}/units", h.ListUnits)
	mux.HandleFunc("GET /api/properties/{propertyId}/insurance-policies", h.ListInsurancePolicies)
	mux.HandleFunc("GET /api/properties/{propertyId}/mortgages", h.ListMortgages)
}
