package core

import "time"

// Clock supplies wall-clock time to the simulation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current frozen time.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// AdvanceSeconds moves the clock forward by a fractional number of seconds.
func (c *ManualClock) AdvanceSeconds(s float64) {
	c.Advance(time.Duration(s * float64(time.Second)))
}
