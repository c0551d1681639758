package service

import (
	"context"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Countdown runs one countdown and renders its progress. Implementations
// wrap the timer engine with a presentation layer (TUI or plain terminal
// output); cancelling ctx interrupts the run, which is a normal outcome,
// not an error. Errors are reserved for presentation failures.
type Countdown interface {
	Run(ctx context.Context, minutes int, typ domain.SessionType) (domain.Outcome, error)
}

// Prompter gates the break session of a full cycle on user confirmation.
type Prompter interface {
	ConfirmBreak(ctx context.Context) (bool, error)
}

// Orchestrator composes the timer, store, and stats aggregation into the
// session flows. It holds no state beyond sequencing.
type Orchestrator interface {
	// RunSession runs one countdown of the given type and duration and
	// appends the resulting record, stamped with the session's end time.
	RunSession(ctx context.Context, typ domain.SessionType, minutes int) (domain.SessionRecord, error)

	// RunCycle runs a work session and, only if it completed and the user
	// confirms, a break session. Both sessions are recorded.
	RunCycle(ctx context.Context) error

	// Stats loads the full log and computes a fresh snapshot.
	Stats(ctx context.Context) (domain.StatsSnapshot, error)

	// History returns records from the last N days, newest last. days <= 0
	// returns the whole log.
	History(ctx context.Context, days int) (domain.SessionLog, error)
}
