package countdown

import (
	"context"
	"time"
)

// DefaultInterval is how often a live countdown view is refreshed.
const DefaultInterval = time.Second

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Ticker recomputes the countdown on a fixed cadence for as long as a view is
// alive. Every tick is computed from the target and the clock, never from the
// previous state.
type Ticker struct {
	target   time.Time
	interval time.Duration
	clock    Clock
}

// NewTicker builds a Ticker. Zero interval falls back to DefaultInterval and a
// nil clock to SystemClock.
func NewTicker(target time.Time, interval time.Duration, clock Clock) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Ticker{target: target, interval: interval, clock: clock}
}

// Target returns the instant being counted down to.
func (t *Ticker) Target() time.Time {
	return t.target
}

// Interval returns the refresh cadence.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Snapshot computes the state for the current instant.
func (t *Ticker) Snapshot() State {
	return Compute(t.target, t.clock.Now())
}

// Run calls fn with a fresh snapshot immediately and then once per interval
// until ctx is done. It returns ctx.Err().
func (t *Ticker) Run(ctx context.Context, fn func(State)) error {
	fn(t.Snapshot())

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(t.Snapshot())
		}
	}
}
