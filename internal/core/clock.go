package core

import "time"

// DefaultMaxStep caps a single simulation step so a stalled host (hidden
// window, suspended terminal) cannot push the player through the ground.
const DefaultMaxStep = 1.0 / 30.0

// Clock turns host timestamps into clamped simulation steps.
type Clock struct {
	// MaxStep is the largest step in seconds Tick will report.
	MaxStep float64

	last    time.Time
	started bool
}

// NewClock creates a clock with the given upper bound in seconds.
// A non-positive bound falls back to DefaultMaxStep.
func NewClock(maxStep float64) *Clock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{MaxStep: maxStep}
}

// Tick records now and returns the elapsed seconds since the previous tick,
// clamped to [0, MaxStep]. The first tick after creation or Reset returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampF(dt, 0, c.MaxStep)
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
