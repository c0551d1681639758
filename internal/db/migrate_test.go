package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSessionsTable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO sessions (id, type, duration, completed, timestamp)
		VALUES ('s1', 'work', 25, 1, '2026-08-24T09:25:00')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; a second run must be a no-op.
	assert.NoError(t, Migrate(database))
}

func TestSessionsTable_TypeConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO sessions (id, type, duration, completed, timestamp)
		VALUES ('s1', 'nap', 25, 1, '2026-08-24T09:25:00')`)
	assert.Error(t, err, "type column only accepts work or break")
}
