package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rentline/rentline/internal/database"
)

// NewTestDB returns a migrated in-memory SQLite database configured the same
// way as production. The database is automatically closed when the test
// completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
