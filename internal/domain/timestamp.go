package domain

import (
	"fmt"
	"time"
)

// timestampLayout is the timezone-naive local datetime format used in
// persisted records. Fractional seconds are written when present and
// trimmed of trailing zeros.
const timestampLayout = "2006-01-02T15:04:05.999999"

// FormatTimestamp renders t in the persisted timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// ParseTimestamp parses a persisted timestamp string. Naive timestamps are
// interpreted in local time; zoned timestamps are accepted for tolerance.
func ParseTimestamp(s string) (time.Time, error) {
	// time.Parse accepts an optional fractional second after the seconds
	// field, so this layout covers values with and without microseconds.
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid session timestamp %q", s)
}
