package units

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles unit HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/units. Results can be narrowed with the status query
// parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.store.Units.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	api.WriteJSON(w, http.StatusOK, units)
}

// Get handles GET /api/units/{unitId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "unitId")
	if err != nil {
		api.WriteInvalidID(w, r, "unitId")
		return
	}

	unit, err := h.store.Units.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	api.WriteJSON(w, http.StatusOK, unit)
}

// Create handles POST /api/units.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.UnitInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	unit, err := h.store.Units.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	api.WriteJSON(w, http.StatusCreated, unit)
}

// Update handles PUT /api/units/{unitId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "unitId")
	if err != nil {
		api.WriteInvalidID(w, r, "unitId")
		return
	}

	var patch domain.UnitUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	unit, err := h.store.Units.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	api.WriteJSON(w, http.StatusOK, unit)
}

// Delete handles DELETE /api/units/{unitId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "unitId")
	if err != nil {
		api.WriteInvalidID(w, r, "unitId")
		return
	}

	existed, err := h.store.Units.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Unit not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAppliances handles GET /api/units/{unitId}/appliances.
func (h *Handler) ListAppliances(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "unitId")
	if err != nil {
		api.WriteInvalidID(w, r, "unitId")
		return
	}

	appliances, err := h.store.Appliances.ListByUnit(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	api.WriteJSON(w, http.StatusOK, appliances)
}

// ListLeases handles GET /api/units/{unitId}/leases.
func (h *Handler) ListLeases(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "unitId")
	if err != nil {
		api.WriteInvalidID(w, r, "unitId")
		return
	}

	leases, err := h.store.Leases.ListByUnit(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	api.WriteJSON(w, http.StatusOK, leases)
}

// ListMaintenanceRequests handles GET /api/units/{unitId}/maintenance-requests.
func (h *Handler) ListMaintenanceRequests(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "unitId")
	if err != nil {
		api.WriteInvalidID(w, r, "unitId")
		return
	}

	requests, err := h.store.Maintenance.ListByUnit(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Unit")
		return
	}
	api.WriteJSON(w, http.StatusOK, requests)
}
