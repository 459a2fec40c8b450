package contacts

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles contact HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/contacts. Results can be narrowed with the type and
// status query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contactType := r.URL.Query().Get("type")
	status := r.URL.Query().Get("status")

	contacts, err := h.store.Contacts.List(r.Context(), contactType, status)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	api.WriteJSON(w, http.StatusOK, contacts)
}

// Get handles GET /api/contacts/{contactId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	contact, err := h.store.Contacts.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	api.WriteJSON(w, http.StatusOK, contact)
}

// Create handles POST /api/contacts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.ContactInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	contact, err := h.store.Contacts.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	api.WriteJSON(w, http.StatusCreated, contact)
}

// Update handles PUT /api/contacts/{contactId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	var patch domain.ContactUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	contact, err := h.store.Contacts.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	api.WriteJSON(w, http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/{contactId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	existed, err := h.store.Contacts.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Contact not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAddresses handles GET /api/contacts/{contactId}/addresses. The primary
// address, when one exists, comes first.
func (h *Handler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	if _, err := h.store.Contacts.Get(r.Context(), id); err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}

	addresses, err := h.store.Contacts.Addresses(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	api.WriteJSON(w, http.StatusOK, addresses)
}

// AddAddress handles POST /api/contacts/{contactId}/addresses. Linking a new
// primary address demotes any existing primary link for the contact.
func (h *Handler) AddAddress(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	var in domain.LinkAddressInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	link, err := h.store.Contacts.AddAddress(r.Context(), id, &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact or address")
		return
	}
	api.WriteJSON(w, http.StatusCreated, link)
}

// RemoveAddress handles DELETE /api/contacts/{contactId}/addresses/{addressId}.
func (h *Handler) RemoveAddress(w http.ResponseWriter, r *http.Request) {
	contactID, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}
	addressID, err := api.PathID(r, "addressId")
	if err != nil {
		api.WriteInvalidID(w, r, "addressId")
		return
	}

	existed, err := h.store.Contacts.RemoveAddress(r.Context(), contactID, addressID)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact address")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Contact address link not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTenant handles GET /api/contacts/{contactId}/tenant.
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	tenant, err := h.store.Tenants.GetByContact(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Tenant")
		return
	}
	api.WriteJSON(w, http.StatusOK, tenant)
}

// ListCommunications handles GET /api/contacts/{contactId}/communications.
func (h *Handler) ListCommunications(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	logs, err := h.store.Communications.ListByContact(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	api.WriteJSON(w, http.StatusOK, logs)
}

// ListNotifications handles GET /api/contacts/{contactId}/notifications.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "contactId")
	if err != nil {
		api.WriteInvalidID(w, r, "contactId")
		return
	}

	notifications, err := h.store.Notifications.ListByContact(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Contact")
		return
	}
	api.WriteJSON(w, http.StatusOK, notifications)
}
