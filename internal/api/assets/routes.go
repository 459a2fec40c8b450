package assets

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds the insurance policy, mortgage, and appliance endpoints
// to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/insurance-policies", h.ListInsurance)
	mux.HandleFunc("POST /api/insurance-policies", h.CreateInsurance)
	mux.HandleFunc("GET /api/insurance-policies/{policyId}", h.GetInsurance)
	mux.HandleFunc("PUT /api/insurance-policies/{policyId}", h.UpdateInsurance)
	mux.HandleFunc("DELETE /api/insurance-policies/{policyId}", h.DeleteInsurance)

	mux.HandleFunc("GET /api/mortgages", h.ListMortgages)
	mux.HandleFunc("POST /api/mortgages", h.CreateMortgage)
	mux.HandleFunc("GET /api/mortgages/{mortgageId}", h.GetMortgage)
	mux.HandleFunc("PUT /api/mortgages/{mortgageId}", h.UpdateMortgage)
	mux.HandleFunc("DELETE /api/mortgages/{mortgageId}", h.DeleteMortgage)

	mux.HandleFunc("GET /api/appliances", h.ListAppliances)
	mux.HandleFunc("POST /api/appliances", h.CreateAppliance)
	mux.HandleFunc("GET /api/appliances/{applianceId}", h.GetAppliance)
	mux.HandleFunc("PUT /api/appliances/{applianceId}", h.UpdateAppliance)
	mux.HandleFunc("DELETE /api/appliances/{applianceId}", h.DeleteAppliance)
}
