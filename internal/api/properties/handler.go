package properties

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles property HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/properties. Results can be narrowed with the status
// query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.store.Properties.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	api.WriteJSON(w, http.StatusOK, properties)
}

// Get handles GET /api/properties/{propertyId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "propertyId")
	if err != nil {
		api.WriteInvalidID(w, r, "propertyId")
		return
	}

	property, err := h.store.Properties.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	api.WriteJSON(w, http.StatusOK, property)
}

// Create handles POST /api/properties.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.PropertyInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	property, err := h.store.Properties.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	api.WriteJSON(w, http.StatusCreated, property)
}

// Update handles PUT /api/properties/{propertyId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "propertyId")
	if err != nil {
		api.WriteInvalidID(w, r, "propertyId")
		return
	}

	var patch domain.PropertyUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	property, err := h.store.Properties.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	api.WriteJSON(w, http.StatusOK, property)
}

// Delete handles DELETE /api/properties/{propertyId}. Units under the property
// are left in place with a dangling property reference.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "propertyId")
	if err != nil {
		api.WriteInvalidID(w, r, "propertyId")
		return
	}

	existed, err := h.store.Properties.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Property not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUnits handles GET /api/properties/{propertyId}/units.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "propertyId")
	if err != nil {
		api.WriteInvalidID(w, r, "propertyId")
		return
	}

	units, err := h.store.Units.ListByProperty(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	api.WriteJSON(w, http.StatusOK, units)
}

// ListInsurancePolicies handles GET /api/properties/{propertyId}/insurance-policies.
func (h *Handler) ListInsurancePolicies(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "propertyId")
	if err != nil {
		api.WriteInvalidID(w, r, "propertyId")
		return
	}

	policies, err := h.store.Insurance.ListByProperty(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	api.WriteJSON(w, http.StatusOK, policies)
}

// ListMortgages handles GET /api/properties/{propertyId}/mortgages.
func (h *Handler) ListMortgages(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "propertyId")
	if err != nil {
		api.WriteInvalidID(w, r, "propertyId")
		return
	}

	mortgages, err := h.store.Mortgages.ListByProperty(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Property")
		return
	}
	api.WriteJSON(w, http.StatusOK, mortgages)
}
