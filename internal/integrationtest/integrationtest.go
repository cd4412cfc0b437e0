// Package integrationtest provides storage helpers used in integration tests.
package integrationtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ledgerlite/ledgerlite/internal/storage"
)

// SetupDB opens a migrated sqlite database in a per-test temp dir and closes
// it when the test finishes.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")

	db, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open(%v) returned error: %v", path, err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("db.Close() failed: %v", err)
		}
	})

	return db
}
