package domain

// SessionRecord is one completed-or-interrupted interval as it is persisted.
// Records are immutable once created: Duration always holds the scheduled
// minutes, not the time actually spent, and Timestamp is recorded at the
// moment the session ended.
type SessionRecord struct {
	Type      SessionType `json:"type"`
	Duration  int         `json:"duration"`
	Completed bool        `json:"completed"`
	Timestamp string      `json:"timestamp"`
}

// SessionLog is the append-only, insertion-ordered sequence of records.
type SessionLog []SessionRecord

// Outcome is the terminal result of a countdown run.
type Outcome struct {
	Type      SessionType
	Duration  int
	Completed bool
}

// StatsSnapshot holds derived counts and minute sums for the today and
// this-week windows. It is computed fresh on each query, never persisted.
type StatsSnapshot struct {
	TodayCount   int
	TodayMinutes int
	WeekCount    int
	WeekMinutes  int
}

// Config holds the fixed session durations passed in at construction.
type Config struct {
	WorkMinutes  int
	BreakMinutes int
}

// DefaultConfig returns the classic 25/5 pomodoro durations.
func DefaultConfig() Config {
	return Config{WorkMinutes: 25, BreakMinutes: 5}
}
