package turso_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/emiliopalmerini/swatches/internal/adapters/turso"
	"github.com/emiliopalmerini/swatches/internal/migrate"
)

// testDB opens a migrated database file that lives for the duration of t.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := turso.NewDB(turso.Config{URL: "file:" + filepath.Join(t.TempDir(), "swatches.db")})
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrate.RunAll(context.Background(), db.DB); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	return db.DB
}
