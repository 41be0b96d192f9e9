package database

import (
	"path/filepath"
	"strings"
	"testing"

	"habit_tracker_backend/internal/config"
)

func TestDSNEnablesWALAndBusyTimeout(t *testing.T) {
	got := dsn("data/habits.db")

	if !strings.HasPrefix(got, "data/habits.db?") {
		t.Fatalf("expected dsn to start with the db path, got %q", got)
	}
	if !strings.Contains(got, "_pragma=journal_mode(WAL)") {
		t.Fatalf("expected WAL journal mode pragma in dsn, got %q", got)
	}
	if !strings.Contains(got, "_pragma=busy_timeout(5000)") {
		t.Fatalf("expected busy_timeout pragma in dsn, got %q", got)
	}
}

func TestInitDBMigratesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.db")

	db, err := InitDB(&config.DatabaseConfig{Path: path})
	if err != nil {
		t.Fatalf("failed to init database: %v", err)
	}

	for _, table := range []string{"habits", "habit_entries"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %q after migration", table)
		}
	}

	var mode string
	if err := db.Raw("PRAGMA journal_mode").Scan(&mode).Error; err != nil {
		t.Fatalf("failed to read journal_mode: %v", err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Fatalf("expected WAL journal mode, got %q", mode)
	}
}
