package maintenance

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles maintenance request HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/maintenance-requests. Results can be narrowed with
// the status and priority query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	priority := r.URL.Query().Get("priority")

	requests, err := h.store.Maintenance.List(r.Context(), status, priority)
	if err != nil {
		api.WriteStoreError(w, r, err, "Maintenance request")
		return
	}
	api.WriteJSON(w, http.StatusOK, requests)
}

// Get handles GET /api/maintenance-requests/{requestId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "requestId")
	if err != nil {
		api.WriteInvalidID(w, r, "requestId")
		return
	}

	request, err := h.store.Maintenance.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Maintenance request")
		return
	}
	api.WriteJSON(w, http.StatusOK, request)
}

// Create handles POST /api/maintenance-requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.MaintenanceRequestInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	request, err := h.store.Maintenance.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Maintenance request")
		return
	}
	api.WriteJSON(w, http.StatusCreated, request)
}

// Update handles PUT /api/maintenance-requests/{requestId}. A completed
// request never reopens; illegal status changes get a 409.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "requestId")
	if err != nil {
		api.WriteInvalidID(w, r, "requestId")
		return
	}

	var patch domain.MaintenanceRequestUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	request, err := h.store.Maintenance.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Maintenance request")
		return
	}
	api.WriteJSON(w, http.StatusOK, request)
}

// Delete handles DELETE /api/maintenance-requests/{requestId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "requestId")
	if err != nil {
		api.WriteInvalidID(w, r, "requestId")
		return
	}

	existed, err := h.store.Maintenance.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Maintenance request")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Maintenance request not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
