// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not declare tables in test files; use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/fixen/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRoom inserts a test room and returns its number.
func seedRoom(t *testing.T, db *sql.DB, number, typeLabel, issue string, floor int) string {
	t.Helper()
	if typeLabel == "" {
		typeLabel = "Classroom"
	}
	if issue == "" {
		issue = "No issue"
	}
	_, err := db.Exec(
		"INSERT INTO rooms (number, type_label, issue, floor) VALUES (?, ?, ?, ?)",
		number, typeLabel, issue, floor,
	)
	if err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return number
}

// seedRequest inserts a test pending request.
func seedRequest(t *testing.T, db *sql.DB, roomNumber, issue string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO pending_requests (room_number, issue) VALUES (?, ?)",
		roomNumber, issue,
	)
	if err != nil {
		t.Fatalf("failed to seed request: %v", err)
	}
}

// floorPtr returns a floor filter value.
func floorPtr(floor int) *int {
	return &floor
}
