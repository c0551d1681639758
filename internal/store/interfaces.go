// Package store persists the append-only session log.
package store

import (
	"context"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Store owns the durable representation of the session log and is its
// sole reader and writer. Implementations keep no cache: every call
// re-reads durable storage so today/week semantics never go stale across
// midnight or week boundaries. Not safe for concurrent writers; a single
// process is assumed to own the storage location.
type Store interface {
	// Load returns the full log in insertion order. A storage location
	// that does not exist yields an empty log, not an error.
	Load(ctx context.Context) (domain.SessionLog, error)

	// Append adds one record to the end of the log. The previous durable
	// state must remain intact if the write fails partway.
	Append(ctx context.Context, rec domain.SessionRecord) error
}
