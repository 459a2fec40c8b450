package payments

import (
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Handler handles payment HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/payments. Results can be narrowed with the status
// query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.store.Payments.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.WriteStoreError(w, r, err, "Payment")
		return
	}
	api.WriteJSON(w, http.StatusOK, payments)
}

// Get handles GET /api/payments/{paymentId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "paymentId")
	if err != nil {
		api.WriteInvalidID(w, r, "paymentId")
		return
	}

	payment, err := h.store.Payments.Get(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Payment")
		return
	}
	api.WriteJSON(w, http.StatusOK, payment)
}

// Create handles POST /api/payments.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.PaymentInput
	if err := api.ReadJSON(r, &in); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}
	if problems := in.Validate(); len(problems) > 0 {
		api.WriteValidationProblems(w, r, problems)
		return
	}

	payment, err := h.store.Payments.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, r, err, "Payment")
		return
	}
	api.WriteJSON(w, http.StatusCreated, payment)
}

// Update handles PUT /api/payments/{paymentId}. A settled payment never moves
// again; illegal status changes get a 409.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "paymentId")
	if err != nil {
		api.WriteInvalidID(w, r, "paymentId")
		return
	}

	var patch domain.PaymentUpdate
	if err := api.ReadJSON(r, &patch); err != nil {
		api.WriteInvalidBody(w, r)
		return
	}

	payment, err := h.store.Payments.Update(r.Context(), id, &patch)
	if err != nil {
		api.WriteStoreError(w, r, err, "Payment")
		return
	}
	api.WriteJSON(w, http.StatusOK, payment)
}

// Delete handles DELETE /api/payments/{paymentId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "paymentId")
	if err != nil {
		api.WriteInvalidID(w, r, "paymentId")
		return
	}

	existed, err := h.store.Payments.Delete(r.Context(), id)
	if err != nil {
		api.WriteStoreError(w, r, err, "Payment")
		return
	}
	if !existed {
		api.WriteError(w, http.StatusNotFound,
			api.NewNotFoundError("Payment not found", api.CorrelationID(r.Context())))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
