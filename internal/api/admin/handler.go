package admin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/seed"
)

// Handler serves the admin API at /_admin/.
type Handler struct {
	db *sql.DB
}

// dataTableNames lists all data tables, children before parents.
var dataTableNames = []string{
	"contact_addresses",
	"communication_logs",
	"notifications",
	"rental_applications",
	"application_templates",
	"leads",
	"vacancies",
	"payments",
	"maintenance_requests",
	"leases",
	"insurance_policies",
	"mortgages",
	"appliances",
	"tenants",
	"units",
	"properties",
	"addresses",
	"contacts",
}

// Reset drops all data from all tables and re-runs seeds.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := ResetData(r.Context(), h.db); err != nil {
		corrID := api.CorrelationID(r.Context())
		api.WriteError(w, http.StatusInternalServerError, &api.Error{
			Status:        "error",
			Message:       err.Error(),
			CorrelationID: corrID,
			Category:      api.CategoryInternalError,
		})
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SeedData runs seed data without dropping existing data first.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Seed(r.Context(), h.db); err != nil {
		corrID := api.CorrelationID(r.Context())
		api.WriteError(w, http.StatusInternalServerError, &api.Error{
			Status:        "error",
			Message:       fmt.Sprintf("failed to seed: %s", err),
			CorrelationID: corrID,
			Category:      api.CategoryInternalError,
		})
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats returns per-table row counts.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int64{}
	for _, table := range dataTableNames {
		var n int64
		//nolint:gosec // table names are hardcoded constants
		if err := h.db.QueryRowContext(r.Context(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
			corrID := api.CorrelationID(r.Context())
			api.WriteError(w, http.StatusInternalServerError, &api.Error{
				Status:        "error",
				Message:       fmt.Sprintf("count table %s: %s", table, err),
				CorrelationID: corrID,
				Category:      api.CategoryInternalError,
			})
			return
		}
		counts[table] = n
	}
	api.WriteJSON(w, http.StatusOK, counts)
}

// ResetData clears all data tables and re-seeds. Exported for reuse by tests.
func ResetData(ctx context.Context, db *sql.DB) error {
	for _, table := range dataTableNames {
		//nolint:gosec // table names are hardcoded constants
		if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	return seed.Seed(ctx, db)
}
