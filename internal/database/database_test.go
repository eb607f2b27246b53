package database

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

func TestRebind(t *testing.T) {
	pg := &DB{driver: DriverPostgres}
	lite := &DB{driver: DriverSQLite}
	q := "SELECT id FROM firms WHERE vendor_id IN (?,?) AND firm_name = ?"

	if got, want := pg.Rebind(q), "SELECT id FROM firms WHERE vendor_id IN ($1,$2) AND firm_name = $3"; got != want {
		t.Fatalf("postgres rebind: got %q want %q", got, want)
	}
	if got := lite.Rebind(q); got != q {
		t.Fatalf("sqlite rebind changed query: %q", got)
	}
}

func TestPlaceholders(t *testing.T) {
	cases := map[int]string{0: "", 1: "?", 3: "?,?,?"}
	for n, want := range cases {
		if got := Placeholders(n); got != want {
			t.Fatalf("Placeholders(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres unique", &pq.Error{Code: "23505"}, true},
		{"postgres other", &pq.Error{Code: "23503"}, false},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, false},
		{"plain", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("IsUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestWithParams(t *testing.T) {
	got := withParams("file:x?mode=memory", "_foreign_keys=on", "_busy_timeout=5000")
	if want := "file:x?mode=memory&_foreign_keys=on&_busy_timeout=5000"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	got = withParams("app.db?_foreign_keys=off", "_foreign_keys=on")
	if want := "app.db?_foreign_keys=off"; got != want {
		t.Fatalf("explicit param overridden: %q", got)
	}
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, "file:migrate_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(ctx, nil); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// A second run has nothing to apply.
	if err := db.Migrate(ctx, nil); err != nil {
		t.Fatalf("migrate again: %v", err)
	}

	for _, table := range []string{"vendors", "firms"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mongodb", "mongodb://localhost"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
