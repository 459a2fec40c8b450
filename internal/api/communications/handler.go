package communications

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles communication log and notification HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/communications.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.store.Communications.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Communication")
		return
	}
	api.WriteJSON(w, http.StatusOK, logs)
}

// Get handles GET /api/communications/{communicationId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "communicationId")
	if err != nil {
		api.WriteInvalidID(w, r, "communicationId")
		return
	}

	log, err := h.store.Communications.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Communication")
		return
	}
	api.WriteJSON(w, http.StatusOK, log)
}

// Create handles POST /api/communications. Log entries are append-only; there
// is no update route.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.CommunicationLogInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	log, err := h.store.Communications.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Communication")
		return
	}
	api.WriteJSON(w, http.StatusCreated, log)
}

// Delete handles DELETE /api/communications/{communicationId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "communicationId")
	if err != nil {
		api.WriteInvalidID(w, r, "communicationId")
		return
	}

	existed, err := h.store.Communications.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Communication")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Communication not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetNotification handles GET /api/notifications/{notificationId}.
func (h *Handler) GetNotification(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "notificationId")
	if err != nil {
		api.WriteInvalidID(w, r, "notificationId")
		return
	}

	notification, err := h.store.Notifications.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Notification")
		return
	}
	api.WriteJSON(w, http.StatusOK, notification)
}

// CreateNotification handles POST /api/notifications. New notifications start
// unread.
func (h *Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var in domain.NotificationInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	notification, err := h.store.Notifications.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Notification")
		return
	}
	api.WriteJSON(w, http.StatusCreated, notification)
}

// MarkNotificationRead handles PUT /api/notifications/{notificationId}/read.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "notificationId")
	if err != nil {
		api.WriteInvalidID(w, r, "notificationId")
		return
	}

	notification, err := h.store.Notifications.MarkRead(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Notification")
		return
	}
	api.WriteJSON(w, http.StatusOK, notification)
}

// DeleteNotification handles DELETE /api/notifications/{notificationId}.
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "notificationId")
	if err != nil {
		api.WriteInvalidID(w, r, "notificationId")
		return
	}

	existed, err := h.store.Notifications.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Notification")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Notification not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
