package timer_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CompletesWhenTimeExpires(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local), 30*time.Second)
	engine := timer.NewEngine(clock, time.Millisecond)

	var ticks []timer.Progress
	out := engine.Run(context.Background(), 1, domain.SessionWork, func(p timer.Progress) {
		ticks = append(ticks, p)
	})

	assert.True(t, out.Completed, "countdown reaching zero should complete")
	assert.Equal(t, domain.SessionWork, out.Type)
	assert.Equal(t, 1, out.Duration)

	require.NotEmpty(t, ticks)
	final := ticks[len(ticks)-1]
	assert.Equal(t, 1.0, final.Fraction, "final tick should report full progress")
	assert.Equal(t, 0, final.Remaining)
}

func TestRun_CancellationInterrupts(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local), time.Second)
	engine := timer.NewEngine(clock, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := 0
	out := engine.Run(ctx, 25, domain.SessionWork, func(p timer.Progress) {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})

	assert.False(t, out.Completed, "cancelled run must not be completed")
	assert.Equal(t, 25, out.Duration, "outcome keeps the scheduled minutes, not elapsed time")
	assert.Equal(t, domain.SessionWork, out.Type)
}

func TestRun_CancelledBeforeFirstTick(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local), time.Second)
	engine := timer.NewEngine(clock, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	out := engine.Run(ctx, 10, domain.SessionBreak, func(p timer.Progress) { called = true })

	assert.False(t, out.Completed)
	assert.Equal(t, 10, out.Duration)
	assert.False(t, called, "no progress should be reported after cancellation")
}

func TestRun_ProgressStaysClamped(t *testing.T) {
	// A large clock step overshoots the deadline between polls; the
	// reported fraction must still stay within [0,1].
	clock := testutil.NewFakeClock(time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local), 45*time.Second)
	engine := timer.NewEngine(clock, time.Millisecond)

	out := engine.Run(context.Background(), 1, domain.SessionWork, func(p timer.Progress) {
		assert.GreaterOrEqual(t, p.Fraction, 0.0)
		assert.LessOrEqual(t, p.Fraction, 1.0)
		assert.GreaterOrEqual(t, p.Remaining, 0)
	})

	assert.True(t, out.Completed)
}

func TestRun_NilCallbackAllowed(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local), time.Minute)
	engine := timer.NewEngine(clock, time.Millisecond)

	out := engine.Run(context.Background(), 1, domain.SessionWork, nil)
	assert.True(t, out.Completed)
}
