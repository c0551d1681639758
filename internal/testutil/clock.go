package testutil

import (
	"sync"
	"time"
)

// FakeClock is a timer.Clock whose time advances by a fixed step on every
// Now call, making countdown loops terminate deterministically in tests.
type FakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewFakeClock(start time.Time, step time.Duration) *FakeClock {
	return &FakeClock{now: start, step: step}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Advance moves the clock forward without consuming a step.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
