package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema of the registry database.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests load it through GetSchemaSQL() instead of declaring their own
// tables, so a column referenced by an adapter but missing here fails
// immediately with "no such column".
//
// The database lives in memory for one session, so there are no migrations.
const SchemaSQL = `
-- Rooms (registry, seq keeps seed order)
CREATE TABLE IF NOT EXISTS rooms (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	number TEXT NOT NULL,
	type_label TEXT NOT NULL,
	issue TEXT NOT NULL DEFAULT 'No issue',
	floor INTEGER NOT NULL,
	UNIQUE(number, floor)
);

CREATE INDEX IF NOT EXISTS idx_rooms_number ON rooms(number);
CREATE INDEX IF NOT EXISTS idx_rooms_floor ON rooms(floor);

-- Pending maintenance requests (one per room and issue)
CREATE TABLE IF NOT EXISTS pending_requests (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	room_number TEXT NOT NULL,
	issue TEXT NOT NULL CHECK(issue IN ('Cleaning Maintenance', 'Repair Maintenance', 'Equipment Maintenance')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(room_number, issue)
);
`

// InitSchema creates the database schema.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
