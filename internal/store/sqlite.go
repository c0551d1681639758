package store

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/google/uuid"
)

// SQLiteStore implements Store on a SQLite database. Insertion order is
// preserved by rowid; Append is a single INSERT, so atomicity comes from
// the database itself rather than a rewrite.
type SQLiteStore struct {
	db db.DBTX
}

// NewSQLiteStore creates a store over the given database handle.
func NewSQLiteStore(dbtx db.DBTX) *SQLiteStore {
	return &SQLiteStore{db: dbtx}
}

func (s *SQLiteStore) Load(ctx context.Context) (domain.SessionLog, error) {
	query := `SELECT type, duration, completed, timestamp FROM sessions ORDER BY rowid`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w: %w", ErrIO, err)
	}
	defer rows.Close()

	log := domain.SessionLog{}
	for rows.Next() {
		var rec domain.SessionRecord
		var completed int
		if err := rows.Scan(&rec.Type, &rec.Duration, &completed, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning session row: %w: %w", ErrCorrupt, err)
		}
		rec.Completed = intToBool(completed)
		log = append(log, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w: %w", ErrIO, err)
	}
	return log, nil
}

func (s *SQLiteStore) Append(ctx context.Context, rec domain.SessionRecord) error {
	query := `INSERT INTO sessions (id, type, duration, completed, timestamp) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New().String(),
		string(rec.Type),
		rec.Duration,
		boolToInt(rec.Completed),
		rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w: %w", ErrIO, err)
	}
	return nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
