package main

import (
	"strings"
	"testing"
)

func TestRun_ReturnsConfigError(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	err := run()
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestRun_ReturnsDatabaseError(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", "file:"+t.TempDir()+"/missing/dir/vendors.db")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("LOG_LEVEL", "error")

	err := run()
	if err == nil || !strings.Contains(err.Error(), "connect database") {
		t.Fatalf("expected database error, got %v", err)
	}
}
