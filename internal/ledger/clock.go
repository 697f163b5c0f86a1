package ledger

import (
	"sync"
	"time"
)

// Clock supplies the instant used for every cooldown comparison and for
// stamping ready times at creation. The ledger never reads the wall clock
// directly; injecting the source keeps cooldown transitions testable without
// real delay.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Used by the server binary.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is an explicitly advanceable clock for tests. It only ever
// moves forward.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock starts a manual clock at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
