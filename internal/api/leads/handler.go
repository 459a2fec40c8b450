package leads

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles lead HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/leads. Results can be narrowed with the status query
// parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.store.Leads.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteStoreError(w, r, err, "Lead")
		return
	}
	api.WriteJSON(w, http.StatusOK, leads)
}

// Get handles GET /api/leads/{leadId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "leadId")
	if err != nil {
		api.WriteInvalidID(w, r, "leadId")
		return
	}

	lead, err := h.store.Leads.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lead")
		return
	}
	api.WriteJSON(w, http.StatusOK, lead)
}

// Create handles POST /api/leads.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.LeadInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	lead, err := h.store.Leads.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lead")
		return
	}
	api.WriteJSON(w, http.StatusCreated, lead)
}

// Update handles PUT /api/leads/{leadId}. Funnel moves are validated; an
// illegal one gets a 409.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "leadId")
	if err != nil {
		api.WriteInvalidID(w, r, "leadId")
		return
	}

	var patch domain.LeadUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	lead, err := h.store.Leads.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lead")
		return
	}
	api.WriteJSON(w, http.StatusOK, lead)
}

// Delete handles DELETE /api/leads/{leadId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "leadId")
	if err != nil {
		api.WriteInvalidID(w, r, "leadId")
		return
	}

	existed, err := h.store.Leads.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Lead")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Lead not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
