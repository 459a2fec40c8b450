package applications

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles rental application and application template HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/applications. Results can be narrowed with the status
// query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	applications, err := h.store.Applications.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteStoreError(w, r, err, "Application")
		return
	}
	api.WriteJSON(w, http.StatusOK, applications)
}

// Get handles GET /api/applications/{applicationId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "applicationId")
	if err != nil {
		api.WriteInvalidID(w, r, "applicationId")
		return
	}

	application, err := h.store.Applications.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Application")
		return
	}
	api.WriteJSON(w, http.StatusOK, application)
}

// Create handles POST /api/applications. The form answers are stored as an
// opaque JSON blob.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.RentalApplicationInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	application, err := h.store.Applications.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Application")
		return
	}
	api.WriteJSON(w, http.StatusCreated, application)
}

// Update handles PUT /api/applications/{applicationId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "applicationId")
	if err != nil {
		api.WriteInvalidID(w, r, "applicationId")
		return
	}

	var patch domain.RentalApplicationUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	application, err := h.store.Applications.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Application")
		return
	}
	api.WriteJSON(w, http.StatusOK, application)
}

// UpdateStatus handles PATCH /api/applications/{applicationId}/status. The
// body carries only the target status; the move is validated against the
// application state machine.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "applicationId")
	if err != nil {
		api.WriteInvalidID(w, r, "applicationId")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := api.ReadJSON(r, &body); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if body.Status == "" {
		api.WriteValidationProblems(w, r, map[string]string{"status": "status is required"})
		return
	}

	application, err := h.store.Applications.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		api.WriteStoreError(w, r, err, "Application")
		return
	}
	api.WriteJSON(w, http.StatusOK, application)
}

// Delete handles DELETE /api/applications/{applicationId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "applicationId")
	if err != nil {
		api.WriteInvalidID(w, r, "applicationId")
		return
	}

	existed, err := h.store.Applications.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Application")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Application not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTemplates handles GET /api/application-templates.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.store.Templates.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Template")
		return
	}
	api.WriteJSON(w, http.StatusOK, templates)
}

// GetTemplate handles GET /api/application-templates/{templateId}.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "templateId")
	if err != nil {
		api.WriteInvalidID(w, r, "templateId")
		return
	}

	template, err := h.store.Templates.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Template")
		return
	}
	api.WriteJSON(w, http.StatusOK, template)
}

// CreateTemplate handles POST /api/application-templates.
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var in domain.ApplicationTemplateInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	template, err := h.store.Templates.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Template")
		return
	}
	api.WriteJSON(w, http.StatusCreated, template)
}

// UpdateTemplate handles PUT /api/application-templates/{templateId}.
func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "templateId")
	if err != nil {
		api.WriteInvalidID(w, r, "templateId")
		return
	}

	var patch domain.ApplicationTemplateUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	template, err := h.store.Templates.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Template")
		return
	}
	api.WriteJSON(w, http.StatusOK, template)
}

// DeleteTemplate handles DELETE /api/application-templates/{templateId}.
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "templateId")
	if err != nil {
		api.WriteInvalidID(w, r, "templateId")
		return
	}

	existed, err := h.store.Templates.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Template")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Template not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
