package core

import "time"

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// FixedStep runs simulation updates at a steady interval. The owner calls
// DueSteps from its own loop; FixedStep itself never schedules anything.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// NewFixedStepWithClock is NewFixedStep with an injected clock.
func NewFixedStepWithClock(interval time.Duration, now func() time.Time) *FixedStep {
	fs := NewFixedStep(interval)
	if now != nil {
		fs.now = now
	}
	return fs
}

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetInterval changes the tick interval and restarts the countdown, so the
// pending tick is dropped and the next one is due a full interval from now.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	f.step = d
	f.Reset()
}

// Reset discards accumulated time. The next tick is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// CatchUpWindow bounds how much elapsed time DueSteps will turn into ticks
// in one call. Intervals longer than the window still get one tick.
const CatchUpWindow = 50 * time.Millisecond

// DueSteps reports how many ticks have come due since the last call and
// consumes them. Short intervals yield several ticks per call, so the tick
// rate is not bound to the caller's frame rate. Carried time is capped at
// max(interval, CatchUpWindow): after a stall the caller sees at most that
// much catch-up and the remainder is dropped.
func (f *FixedStep) DueSteps() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta

	limit := CatchUpWindow
	if f.step > limit {
		limit = f.step
	}
	if f.accumulator > limit {
		f.accumulator = limit
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}
