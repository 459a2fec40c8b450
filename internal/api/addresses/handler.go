package addresses

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles address HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/addresses.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.store.Addresses.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Address")
		return
	}
	api.WriteJSON(w, http.StatusOK, addresses)
}

// Get handles GET /api/addresses/{addressId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "addressId")
	if err != nil {
		api.WriteInvalidID(w, r, "addressId")
		return
	}

	address, err := h.store.Addresses.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Address")
		return
	}
	api.WriteJSON(w, http.StatusOK, address)
}

// Create handles POST /api/addresses.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.AddressInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	address, err := h.store.Addresses.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Address")
		return
	}
	api.WriteJSON(w, http.StatusCreated, address)
}

// Update handles PUT /api/addresses/{addressId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "addressId")
	if err != nil {
		api.WriteInvalidID(w, r, "addressId")
		return
	}

	var patch domain.AddressUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	address, err := h.store.Addresses.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Address")
		return
	}
	api.WriteJSON(w, http.StatusOK, address)
}

// Delete handles DELETE /api/addresses/{addressId}. Any contact address links
// pointing at the address are removed with it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "addressId")
	if err != nil {
		api.WriteInvalidID(w, r, "addressId")
		return
	}

	existed, err := h.store.Addresses.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Address")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Address not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
