package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// WriteJSON marshals v as JSON and writes it to w with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// ReadJSON decodes the request body into v.
func ReadJSON(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// PathID parses the named path value as a positive numeric ID.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, r.PathValue(name))
	}
	return id, nil
}

// WriteInvalidID writes the 400 envelope for a malformed path ID.
func WriteInvalidID(w http.ResponseWriter, r *http.Request, name string) {
	corrID := CorrelationID(r.Context())
	WriteError(w, http.StatusBadRequest,
		NewValidationError("Invalid "+name, corrID, map[string]string{name: name + " must be a positive integer"}))
}

// WriteInvalidBody writes the 400 envelope for an unparseable request body.
func WriteInvalidBody(w http.ResponseWriter, r *http.Request) {
	corrID := CorrelationID(r.Context())
	WriteError(w, http.StatusBadRequest,
		NewValidationError("Invalid request body", corrID, nil))
}

// WriteValidationProblems writes the 400 envelope for field-level validation
// failures.
func WriteValidationProblems(w http.ResponseWriter, r *http.Request, problems map[string]string) {
	corrID := CorrelationID(r.Context())
	WriteError(w, http.StatusBadRequest,
		NewValidationError("Validation failed", corrID, problems))
}
