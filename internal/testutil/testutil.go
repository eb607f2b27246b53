package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/georgemunganga/vendor-accounts/internal/database"
)

// OpenTestDB opens a migrated in-memory SQLite database private to the test.
// Use a distinct name per test so shared-cache databases do not collide.
func OpenTestDB(t testing.TB, name string) *database.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, database.DriverSQLite, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Migrate(ctx, DiscardLogger()); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
