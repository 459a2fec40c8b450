package contacts

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all contact endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/contacts", h.List)
	mux.HandleFunc("POST /api/contacts", h.Create)
	mux.HandleFunc("GET /api/contacts/{contactId}", h.Get)
	mux.HandleFunc("PUT /api/contacts/{contactId}", h.Update)
	mux.HandleFunc("DELETE /api/contacts/{contactId}", h.Delete)

	mux.HandleFunc("GET /api/contacts/{contactId}/addresses", h.ListAddresses)
	mux.HandleFunc("POST /api/contacts/{contactId}/addresses", h.AddAddress)
	mux.HandleFunc("DELETE /api/contacts/{contactId}/addresses/{addressId}", h.RemoveAddress)

	mux.HandleFunc("GET /api/contacts/{contactId}/tenant", h.GetTenant)
	mux.HandleFunc("GET /api/contacts/{contactId}/communications", h.ListCommunications)
	mux.HandleFunc("GET /api/contacts/{contactId}/notifications", h.ListNotifications)
}
