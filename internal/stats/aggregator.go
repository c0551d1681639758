// Package stats derives today/week session statistics from a loaded log.
package stats

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// RecordParseError reports a record whose timestamp could not be parsed
// during aggregation. Aggregation stops at the offending record instead of
// silently skipping it, so data corruption surfaces early.
type RecordParseError struct {
	Index     int
	Timestamp string
	Err       error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("session record %d: %v", e.Index, e.Err)
}

func (e *RecordParseError) Unwrap() error { return e.Err }

// Compute aggregates the log into a StatsSnapshot relative to ref.
// Only completed work sessions count. The today window starts at ref's
// local midnight; the week window is Monday-aligned and includes the
// current day, so everything counted today is also counted in the week.
// Pure: no side effects, deterministic given log and ref.
func Compute(log domain.SessionLog, ref time.Time) (domain.StatsSnapshot, error) {
	todayStart := DayStart(ref)
	weekStart := WeekStart(ref)

	var snap domain.StatsSnapshot
	for i, rec := range log {
		if rec.Type != domain.SessionWork || !rec.Completed {
			continue
		}

		ts, err := domain.ParseTimestamp(rec.Timestamp)
		if err != nil {
			return domain.StatsSnapshot{}, &RecordParseError{Index: i, Timestamp: rec.Timestamp, Err: err}
		}

		if !ts.Before(todayStart) {
			snap.TodayCount++
			snap.TodayMinutes += rec.Duration
		}
		if !ts.Before(weekStart) {
			snap.WeekCount++
			snap.WeekMinutes += rec.Duration
		}
	}
	return snap, nil
}

// DayStart truncates t to the start of its calendar day in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday midnight opening the week containing t.
func WeekStart(t time.Time) time.Time {
	// time.Weekday is Sunday-zero; shift so Monday is offset 0.
	offset := (int(t.Weekday()) + 6) % 7
	return DayStart(t).AddDate(0, 0, -offset)
}
