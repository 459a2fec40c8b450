package applications

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all rental application and template endpoints to the
// given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/applications", h.List)
	mux.HandleFunc("POST /api/applications", h.Create)
	mux.HandleFunc("GET /api/applications/{applicationId}", h.Get)
	mux.HandleFunc("PUT /api/applications/{applicationId}", h.Update)
	mux.HandleFunc("PATCH /api/applications/{applicationId}/status", h.UpdateStatus)
	mux.HandleFunc("DELETE /api/applications/{applicationId}", h.Delete)

	mux.HandleFunc("GET /api/application-templates", h.ListTemplates)
	mux.HandleFunc("POST /api/application-templates", h.CreateTemplate)
	mux.HandleFunc("GET /api/application-templates/{templateId}", h.GetTemplate)
	mux.HandleFunc("PUT /api/application-templates/{templateId}", h.UpdateTemplate)
	mux.HandleFunc("DELETE /api/application-templates/{templateId}", h.DeleteTemplate)
}
