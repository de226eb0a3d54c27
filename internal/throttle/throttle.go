// Package throttle collapses bursts of input events into at most one call
// per window. The first call in a window runs immediately; the rest are
// dropped.
package throttle

import "time"

// DefaultWindow matches the rate used for speed and color inputs.
const DefaultWindow = 100 * time.Millisecond

// Throttle admits at most one call per window.
type Throttle struct {
	window time.Duration
	until  time.Time
	now    func() time.Time
}

// New creates a Throttle with the given window.
func New(window time.Duration) *Throttle {
	return NewWithClock(window, nil)
}

// NewWithClock creates a Throttle that reads time from now.
func NewWithClock(window time.Duration, now func() time.Time) *Throttle {
	if window < 0 {
		window = 0
	}
	if now == nil {
		now = time.Now
	}
	return &Throttle{window: window, now: now}
}

// Allow reports whether a call may run now, opening a new window if so.
func (t *Throttle) Allow() bool {
	now := t.now()
	if now.Before(t.until) {
		return false
	}
	t.until = now.Add(t.window)
	return true
}

// Do runs fn if the throttle admits it and reports whether it ran.
func (t *Throttle) Do(fn func()) bool {
	if !t.Allow() {
		return false
	}
	fn()
	return true
}
