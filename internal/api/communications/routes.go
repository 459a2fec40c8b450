package communications

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all communication log and notification endpoints to the
// given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/communications", h.List)
	mux.HandleFunc("POST /api/communications", h.Create)
	mux.HandleFunc("GET /api/communications/{communicationId}", h.Get)
	mux.HandleFunc("DELETE /api/communications/{communicationId}", h.Delete)

	mux.HandleFunc("POST /api/notifications", h.CreateNotification)
	mux.HandleFunc("GET /api/notifications/{notificationId}", h.GetNotification)
	mux.HandleFunc("PUT /api/notifications/{notificationId}/read", h.MarkNotificationRead)
	mux.HandleFunc("DELETE /api/notifications/{notificationId}", h.DeleteNotification)
}
