package assets

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles insurance policy, mortgage, and appliance HTTP requests.
type Handler struct {
	store *store.Store
}

// ListInsurance handles GET /api/insurance-policies.
func (h *Handler) ListInsurance(w http.ResponseWriter, r *http.Request) {
	policies, err := h.store.Insurance.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Insurance policy")
		return
	}
	api.WriteJSON(w, http.StatusOK, policies)
}

// GetInsurance handles GET /api/insurance-policies/{policyId}.
func (h *Handler) GetInsurance(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "policyId")
	if err != nil {
		api.WriteInvalidID(w, r, "policyId")
		return
	}

	policy, err := h.store.Insurance.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Insurance policy")
		return
	}
	api.WriteJSON(w, http.StatusOK, policy)
}

// CreateInsurance handles POST /api/insurance-policies.
func (h *Handler) CreateInsurance(w http.ResponseWriter, r *http.Request) {
	var in domain.InsurancePolicyInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	policy, err := h.store.Insurance.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Insurance policy")
		return
	}
	api.WriteJSON(w, http.StatusCreated, policy)
}

// UpdateInsurance handles PUT /api/insurance-policies/{policyId}.
func (h *Handler) UpdateInsurance(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "policyId")
	if err != nil {
		api.WriteInvalidID(w, r, "policyId")
		return
	}

	var patch domain.InsurancePolicyUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	policy, err := h.store.Insurance.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Insurance policy")
		return
	}
	api.WriteJSON(w, http.StatusOK, policy)
}

// DeleteInsurance handles DELETE /api/insurance-policies/{policyId}.
func (h *Handler) DeleteInsurance(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "policyId")
	if err != nil {
		api.WriteInvalidID(w, r, "policyId")
		return
	}

	existed, err := h.store.Insurance.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Insurance policy")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Insurance policy not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMortgages handles GET /api/mortgages.
func (h *Handler) ListMortgages(w http.ResponseWriter, r *http.Request) {
	mortgages, err := h.store.Mortgages.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Mortgage")
		return
	}
	api.WriteJSON(w, http.StatusOK, mortgages)
}

// GetMortgage handles GET /api/mortgages/{mortgageId}.
func (h *Handler) GetMortgage(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "mortgageId")
	if err != nil {
		api.WriteInvalidID(w, r, "mortgageId")
		return
	}

	mortgage, err := h.store.Mortgages.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Mortgage")
		return
	}
	api.WriteJSON(w, http.StatusOK, mortgage)
}

// CreateMortgage handles POST /api/mortgages.
func (h *Handler) CreateMortgage(w http.ResponseWriter, r *http.Request) {
	var in domain.MortgageInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	mortgage, err := h.store.Mortgages.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Mortgage")
		return
	}
	api.WriteJSON(w, http.StatusCreated, mortgage)
}

// UpdateMortgage handles PUT /api/mortgages/{mortgageId}.
func (h *Handler) UpdateMortgage(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "mortgageId")
	if err != nil {
		api.WriteInvalidID(w, r, "mortgageId")
		return
	}

	var patch domain.MortgageUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	mortgage, err := h.store.Mortgages.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Mortgage")
		return
	}
	api.WriteJSON(w, http.StatusOK, mortgage)
}

// DeleteMortgage handles DELETE /api/mortgages/{mortgageId}.
func (h *Handler) DeleteMortgage(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "mortgageId")
	if err != nil {
		api.WriteInvalidID(w, r, "mortgageId")
		return
	}

	existed, err := h.store.Mortgages.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Mortgage")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Mortgage not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAppliances handles GET /api/appliances.
func (h *Handler) ListAppliances(w http.ResponseWriter, r *http.Request) {
	appliances, err := h.store.Appliances.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Appliance")
		return
	}
	api.WriteJSON(w, http.StatusOK, appliances)
}

// GetAppliance handles GET /api/appliances/{applianceId}.
func (h *Handler) GetAppliance(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "applianceId")
	if err != nil {
		api.WriteInvalidID(w, r, "applianceId")
		return
	}

	appliance, err := h.store.Appliances.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Appliance")
		return
	}
	api.WriteJSON(w, http.StatusOK, appliance)
}

// CreateAppliance handles POST /api/appliances.
func (h *Handler) CreateAppliance(w http.ResponseWriter, r *http.Request) {
	var in domain.ApplianceInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	appliance, err := h.store.Appliances.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Appliance")
		return
	}
	api.WriteJSON(w, http.StatusCreated, appliance)
}

// UpdateAppliance handles PUT /api/appliances/{applianceId}.
func (h *Handler) UpdateAppliance(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "applianceId")
	if err != nil {
		api.WriteInvalidID(w, r, "applianceId")
		return
	}

	var patch domain.ApplianceUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	appliance, err := h.store.Appliances.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Appliance")
		return
	}
	api.WriteJSON(w, http.StatusOK, appliance)
}

// DeleteAppliance handles DELETE /api/appliances/{applianceId}.
func (h *Handler) DeleteAppliance(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "applianceId")
	if err != nil {
		api.WriteInvalidID(w, r, "applianceId")
		return
	}

	existed, err := h.store.Appliances.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Appliance")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Appliance not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
