package life

import (
	"time"

	"lifeboard/internal/core"
)

// Interval is the default delay between generations.
const Interval = 100 * time.Millisecond

// Loop runs a Board at a fixed cadence from a host frame callback. At most
// one tick is pending at a time. A tick reads the running flag when it fires,
// so a tick scheduled before a stop neither steps nor reschedules.
type Loop struct {
	board *Board
	timer *core.FixedStep
}

// NewLoop wraps board with a timer firing every interval.
func NewLoop(board *Board, interval time.Duration) *Loop {
	return &Loop{board: board, timer: core.NewFixedStep(interval)}
}

// Board returns the driven board.
func (l *Loop) Board() *Board { return l.board }

// Timer exposes the underlying timer, mainly so tests can install a clock.
func (l *Loop) Timer() *core.FixedStep { return l.timer }

// Running reports the board's running flag.
func (l *Loop) Running() bool { return l.board.Running() }

// SetRunning starts or stops the simulation. Starting fires the first tick on
// the next Update unless a tick is already pending.
func (l *Loop) SetRunning(v bool) {
	l.board.SetRunning(v)
	if v && !l.timer.Armed() {
		l.timer.ScheduleNow()
	}
}

// Pending reports whether a tick is scheduled.
func (l *Loop) Pending() bool { return l.timer.Armed() }

// Update fires the pending tick if it is due. It reports whether the board
// advanced.
func (l *Loop) Update() (bool, error) {
	if !l.timer.Due() {
		return false, nil
	}
	return l.tick()
}

func (l *Loop) tick() (bool, error) {
	if !l.board.Running() {
		return false, nil
	}
	if err := l.board.Step(); err != nil {
		return false, err
	}
	l.timer.Schedule()
	return true, nil
}
