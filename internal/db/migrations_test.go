package db_test

import (
	"path/filepath"
	"testing"

	"github.com/LeeJaeHyuck/calory-calendar/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "calcal.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	var version int
	if err := sqldb.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected schema version 1, got %d", version)
	}

	if _, err := sqldb.Exec("INSERT INTO records(key, value) VALUES('user-settings', '{}')"); err != nil {
		t.Fatalf("insert into records: %v", err)
	}
}
