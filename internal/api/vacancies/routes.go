package vacancies

import (
	"net/http"

	"github.com/rentline/rentline/internal/store"
)

// RegisterRoutes adds all vacancy endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/vacancies", h.List)
	mux.HandleFunc("GET /api/vacancies/manage", h.Manage)
	mux.HandleFunc("POST /api/vacancies", h.Create)
	mux.HandleFunc("GET /api/vacancies/{vacancyId}", h.Get)
	mux.HandleFunc("PUT /api/vacancies/{vacancyId}", h.Update)
	mux.HandleFunc("DELETE /api/vacancies/{vacancyId}", h.Delete)
}
