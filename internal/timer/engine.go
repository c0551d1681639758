package timer

import (
	"context"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// DefaultPollInterval is the countdown polling cadence: fine enough for a
// smooth progress display, coarse enough to avoid busy-spinning. It also
// bounds worst-case cancellation latency to one tick.
const DefaultPollInterval = 100 * time.Millisecond

// Progress is the per-tick report emitted to the presentation layer while
// a countdown is running.
type Progress struct {
	// Fraction is elapsed/total, clamped to [0,1].
	Fraction float64
	// Remaining is the whole seconds left, floored.
	Remaining int
}

// Engine runs one countdown of a given duration and type. States are
// Idle -> Running -> {Completed, Interrupted}; both ends are terminal and
// reported through the returned Outcome. The engine holds no state across
// runs, but the orchestrator runs at most one countdown at a time.
type Engine struct {
	clock    Clock
	interval time.Duration
}

// NewEngine creates an Engine polling at the given interval. A zero or
// negative interval falls back to DefaultPollInterval.
func NewEngine(clock Clock, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Engine{clock: clock, interval: interval}
}

// Run counts down the scheduled minutes, invoking onTick at the polling
// cadence until the time expires or ctx is cancelled. The returned
// Outcome always carries the scheduled duration; an interrupted run
// discards whatever fraction elapsed. Cancellation is cooperative and is
// observed between ticks, including before the first one.
func (e *Engine) Run(ctx context.Context, minutes int, typ domain.SessionType, onTick func(Progress)) domain.Outcome {
	out := domain.Outcome{Type: typ, Duration: minutes}
	total := time.Duration(minutes) * time.Minute
	start := e.clock.Now()

	for {
		if ctx.Err() != nil {
			return out
		}

		elapsed := e.clock.Now().Sub(start)
		remaining := total - elapsed

		if remaining <= 0 {
			if onTick != nil {
				onTick(Progress{Fraction: 1})
			}
			out.Completed = true
			return out
		}

		if onTick != nil {
			onTick(progressAt(elapsed, total, remaining))
		}

		select {
		case <-ctx.Done():
			return out
		case <-time.After(e.interval):
		}
	}
}

func progressAt(elapsed, total, remaining time.Duration) Progress {
	frac := float64(elapsed) / float64(total)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return Progress{
		Fraction:  frac,
		Remaining: int(remaining / time.Second),
	}
}
