package testutil

import (
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Record options
type RecordOption func(*domain.SessionRecord)

func WithCompleted(completed bool) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Completed = completed
	}
}

func WithTimestamp(t time.Time) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Timestamp = domain.FormatTimestamp(t)
	}
}

func WithRawTimestamp(s string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Timestamp = s
	}
}

// NewTestRecord builds a completed session record ending now, overridable
// via options.
func NewTestRecord(typ domain.SessionType, minutes int, opts ...RecordOption) domain.SessionRecord {
	r := domain.SessionRecord{
		Type:      typ,
		Duration:  minutes,
		Completed: true,
		Timestamp: domain.FormatTimestamp(time.Now()),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
