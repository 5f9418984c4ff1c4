package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("fresh database version = %d, want 0", version)
	}
}

func TestApplyMigrations_AppliesInOrder(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"002_add_column.sql": "ALTER TABLE test ADD COLUMN name TEXT;",
		"001_create.sql":     "CREATE TABLE test (id INTEGER);",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version after apply = %d, want 2", version)
	}

	// Column from migration 2 must exist
	if _, err := db.Exec("INSERT INTO test (id, name) VALUES (1, 'a')"); err != nil {
		t.Errorf("schema missing migrated column: %v", err)
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	fsys := migrationFS(map[string]string{
		"001_create.sql": "CREATE TABLE test (id INTEGER);",
	})

	runner := NewRunner(db, fsys)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations failed: %v", err)
	}

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied %d migrations, want 0", applied)
	}
}

func TestApplyMigrations_FailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_bad.sql": "THIS IS NOT SQL;",
	}))

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Fatal("expected error from invalid migration SQL")
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("version after failed migration = %d, want 0", version)
	}
}

func TestReadMigrations_RejectsBadFilenames(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"init.sql", "abc_init.sql", "000_init.sql"} {
		runner := NewRunner(db, migrationFS(map[string]string{
			name: "CREATE TABLE test (id INTEGER);",
		}))
		if _, err := runner.ReadMigrations(); err == nil {
			t.Errorf("expected error for filename %q", name)
		}
	}
}

func TestReadMigrations_RejectsDuplicateVersions(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_a.sql": "CREATE TABLE a (id INTEGER);",
		"001_b.sql": "CREATE TABLE b (id INTEGER);",
	}))

	if _, err := runner.ReadMigrations(); err == nil {
		t.Error("expected error for duplicate versions")
	}
}
