package tenants

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles tenant HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/tenants.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.store.Tenants.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Tenant")
		return
	}
	api.WriteJSON(w, http.StatusOK, tenants)
}

// Get handles GET /api/tenants/{tenantId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "tenantId")
	if err != nil {
		api.WriteInvalidID(w, r, "tenantId")
		return
	}

	tenant, err := h.store.Tenants.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Tenant")
		return
	}
	api.WriteJSON(w, http.StatusOK, tenant)
}

// Create handles POST /api/tenants.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.TenantInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	tenant, err := h.store.Tenants.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Tenant")
		return
	}
	api.WriteJSON(w, http.StatusCreated, tenant)
}

// Update handles PUT /api/tenants/{tenantId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "tenantId")
	if err != nil {
		api.WriteInvalidID(w, r, "tenantId")
		return
	}

	var patch domain.TenantUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	tenant, err := h.store.Tenants.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Tenant")
		return
	}
	api.WriteJSON(w, http.StatusOK, tenant)
}

// Delete handles DELETE /api/tenants/{tenantId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "tenantId")
	if err != nil {
		api.WriteInvalidID(w, r, "tenantId")
		return
	}

	existed, err := h.store.Tenants.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Tenant")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Tenant not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLeases handles GET /api/tenants/{tenantId}/leases.
func (h *Handler) ListLeases(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "tenantId")
	if err != nil {
		api.WriteInvalidID(w, r, "tenantId")
		return
	}

	leases, err := h.store.Leases.ListByTenant(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Tenant")
		return
	}
	api.WriteJSON(w, http.StatusOK, leases)
}
