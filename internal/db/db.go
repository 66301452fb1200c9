package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// IsMemoryDSN reports whether dsn names an in-memory database.
func IsMemoryDSN(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
}

// Open opens an in-memory database and creates the schema.
// The pool is pinned to a single connection: every new connection to
// ":memory:" would see an empty database of its own.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	if !IsMemoryDSN(dsn) {
		return nil, fmt.Errorf("database %q is not in-memory", dsn)
	}

	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)
	database.SetConnMaxLifetime(0)

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}
