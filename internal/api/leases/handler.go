package leases

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles lease HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/leases. Results can be narrowed with the status query
// parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	leases, err := h.store.Leases.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteStoreError(w, r, err, "Lease")
		return
	}
	api.WriteJSON(w, http.StatusOK, leases)
}

// Get handles GET /api/leases/{leaseId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "leaseId")
	if err != nil {
		api.WriteInvalidID(w, r, "leaseId")
		return
	}

	lease, err := h.store.Leases.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lease")
		return
	}
	api.WriteJSON(w, http.StatusOK, lease)
}

// Create handles POST /api/leases.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.LeaseInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	lease, err := h.store.Leases.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lease")
		return
	}
	api.WriteJSON(w, http.StatusCreated, lease)
}

// Update handles PUT /api/leases/{leaseId}. Status changes go through the
// lease state machine; an illegal move gets a 409.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "leaseId")
	if err != nil {
		api.WriteInvalidID(w, r, "leaseId")
		return
	}

	var patch domain.LeaseUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	lease, err := h.store.Leases.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lease")
		return
	}
	api.WriteJSON(w, http.StatusOK, lease)
}

// Delete handles DELETE /api/leases/{leaseId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "leaseId")
	if err != nil {
		api.WriteInvalidID(w, r, "leaseId")
		return
	}

	existed, err := h.store.Leases.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lease")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Lease not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPayments handles GET /api/leases/{leaseId}/payments.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "leaseId")
	if err != nil {
		api.WriteInvalidID(w, r, "leaseId")
		return
	}

	payments, err := h.store.Payments.ListByLease(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lease")
		return
	}
	api.WriteJSON(w, http.StatusOK, payments)
}
