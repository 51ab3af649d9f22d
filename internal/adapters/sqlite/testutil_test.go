// Package sqlite_test contains integration tests for the SQLite repository.
//
// Test databases are built from db.GetSchemaSQL() so tests always run
// against the authoritative schema. Do not hardcode CREATE TABLE statements
// in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/hb/internal/db"
	"github.com/example/hb/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// testRecord builds a valid heartbeat record with defaults.
func testRecord(code string) *secondary.HeartbeatRecord {
	return &secondary.HeartbeatRecord{
		Code:      code,
		LastLine:  code + " was last done %s ago",
		NeverLine: code + " has never been done",
	}
}
