package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id        TEXT PRIMARY KEY,
		type      TEXT NOT NULL CHECK(type IN ('work','break')),
		duration  INTEGER NOT NULL CHECK(duration > 0),
		completed INTEGER NOT NULL DEFAULT 0,
		timestamp TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions(timestamp)`,
}

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
