package core

import "time"

// FixedStep is a one-shot deadline timer polled from a host frame loop. It
// models a self-rescheduling timeout: the owner schedules it, polls Due each
// frame and schedules again after the callback ran.
type FixedStep struct {
	step  time.Duration
	next  time.Time
	armed bool
	now   func() time.Time
}

// NewFixedStep constructs a FixedStep firing interval after each Schedule.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the delay used by Schedule. Non-positive values fall
// back to 100ms.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	f.step = interval
}

// Interval returns the configured delay.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetClock replaces the time source. Tests use it to drive the timer by hand.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
}

// Schedule arms the timer to fire one interval from now.
func (f *FixedStep) Schedule() {
	f.next = f.now().Add(f.step)
	f.armed = true
}

// ScheduleNow arms the timer to fire on the next poll.
func (f *FixedStep) ScheduleNow() {
	f.next = f.now()
	f.armed = true
}

// Armed reports whether a firing is pending.
func (f *FixedStep) Armed() bool { return f.armed }

// Due reports whether the pending firing has reached its deadline. A due
// timer disarms itself; the caller decides whether to Schedule again.
func (f *FixedStep) Due() bool {
	if !f.armed || f.now().Before(f.next) {
		return false
	}
	f.armed = false
	return true
}
