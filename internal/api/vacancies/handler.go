package vacancies

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles vacancy HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/vacancies. Without a status filter it serves the
// public listing view: only active vacancies.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "active"
	}

	vacancies, err := h.store.Vacancies.List(r.Context(), status)
	if err != nil {
		api.WriteStoreError(w, r, err, "Vacancy")
		return
	}
	api.WriteJSON(w, http.StatusOK, vacancies)
}

// Manage handles GET /api/vacancies/manage: every vacancy regardless of
// status, joined with its unit and property context.
func (h *Handler) Manage(w http.ResponseWriter, r *http.Request) {
	listings, err := h.store.Vacancies.ListListings(r.Context())
	if err != nil {
		api.WriteStoreError(w, r, err, "Vacancy")
		return
	}
	api.WriteJSON(w, http.StatusOK, listings)
}

// Get handles GET /api/vacancies/{vacancyId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "vacancyId")
	if err != nil {
		api.WriteInvalidID(w, r, "vacancyId")
		return
	}

	vacancy, err := h.store.Vacancies.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Vacancy")
		return
	}
	api.WriteJSON(w, http.StatusOK, vacancy)
}

// Create handles POST /api/vacancies.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.VacancyInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	vacancy, err := h.store.Vacancies.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Vacancy")
		return
	}
	api.WriteJSON(w, http.StatusCreated, vacancy)
}

// Update handles PUT /api/vacancies/{vacancyId}. A rented vacancy is final;
// illegal status changes get a 409.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "vacancyId")
	if err != nil {
		api.WriteInvalidID(w, r, "vacancyId")
		return
	}

	var patch domain.VacancyUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	vacancy, err := h.store.Vacancies.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Vacancy")
		return
	}
	api.WriteJSON(w, http.StatusOK, vacancy)
}

// Delete handles DELETE /api/vacancies/{vacancyId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "vacancyId")
	if err != nil {
		api.WriteInvalidID(w, r, "vacancyId")
		return
	}

	existed, err := h.store.Vacancies.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Vacancy")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Vacancy not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
