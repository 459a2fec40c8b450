package api

import (
	"errors"
	"net/http"

	"github.com/rentline/rentline/internal/domain"
	"github.com/rentline/rentline/internal/store"
)

// Error categories used across the API.
const (
	CategoryValidationError   = "VALIDATION_ERROR"
	CategoryNotFound          = "NOT_FOUND"
	CategoryConflict          = "CONFLICT"
	CategoryInvalidTransition = "INVALID_TRANSITION"
	CategoryUnauthorized      = "UNAUTHORIZED"
	CategoryInternalError     = "INTERNAL_ERROR"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Status        string            `json:"status"`
	Message       string            `json:"message"`
	CorrelationID string            `json:"correlationId"`
	Category      string            `json:"category"`
	Details       map[string]string `json:"details,omitempty"`
}

// NewNotFoundError creates a 404 error with the NOT_FOUND category.
func NewNotFoundError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryNotFound,
	}
}

// NewValidationError creates a 400 error with the VALIDATION_ERROR category.
// Details maps field names to what is wrong with them.
func NewValidationError(message, correlationID string, details map[string]string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryValidationError,
		Details:       details,
	}
}

// NewUnauthorizedError creates a 401 error with the UNAUTHORIZED category.
func NewUnauthorizedError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryUnauthorized,
	}
}

// NewInternalError creates a generic 500 error. The underlying cause is logged
// but never echoed to the client.
func NewInternalError(correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       "Internal Server Error",
		CorrelationID: correlationID,
		Category:      CategoryInternalError,
	}
}

// WriteError writes an Error as a JSON response with the given HTTP status code.
func WriteError(w http.ResponseWriter, statusCode int, apiErr *Error) {
	WriteJSON(w, statusCode, apiErr)
}

// WriteStoreError maps a storage error onto the envelope: unknown IDs become
// 404, rejected status transitions become 409, everything else is a generic
// 500. The resource name is used in the not-found message.
func WriteStoreError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	corrID := CorrelationID(r.Context())
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, NewNotFoundError(resource+" not found", corrID))
	case errors.Is(err, domain.ErrInvalidTransition):
		WriteError(w, http.StatusConflict, &Error{
			Status:        "error",
			Message:       err.Error(),
			CorrelationID: corrID,
			Category:      CategoryInvalidTransition,
		})
	default:
		WriteError(w, http.StatusInternalServerError, NewInternalError(corrID))
	}
}
