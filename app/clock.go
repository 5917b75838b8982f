package app

import "time"

// Clock measures elapsed render time in seconds from a fixed start point.
// Elapsed never decreases, even if the time source misbehaves.
type Clock struct {
	start time.Time
	now   func() time.Time
	last  float64
}

// NewClock creates a clock starting now, backed by the wall clock.
func NewClock() *Clock {
	return NewClockWithNow(time.Now)
}

// NewClockWithNow creates a clock with an injectable time source. Tests use
// this to drive bounded, deterministic frame sequences.
func NewClockWithNow(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Elapsed returns seconds since the clock started, monotonically non-decreasing.
func (c *Clock) Elapsed() float64 {
	e := c.now().Sub(c.start).Seconds()
	if e < c.last {
		return c.last
	}
	c.last = e
	return e
}

// Restart resets the start point to now.
func (c *Clock) Restart() {
	c.start = c.now()
	c.last = 0
}
