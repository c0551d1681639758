package timer

import "time"

// Clock supplies the current time. The engine and orchestrator depend on
// this interface instead of time.Now so tests can inject synthetic time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
