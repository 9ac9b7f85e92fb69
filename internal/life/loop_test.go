package life

import (
	"testing"
	"time"

	"lifeboard/internal/core"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLoop(t *testing.T) (*Loop, *fakeClock) {
	t.Helper()
	b := NewBoard(core.NewRNG(9))
	blinker := gridWith(Rows, Cols, [2]int{20, 19}, [2]int{20, 20}, [2]int{20, 21})
	if err := b.SetGrid(blinker); err != nil {
		t.Fatalf("SetGrid: %v", err)
	}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := NewLoop(b, Interval)
	l.Timer().SetClock(clock.now)
	return l, clock
}

func mustUpdate(t *testing.T, l *Loop) bool {
	t.Helper()
	stepped, err := l.Update()
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	return stepped
}

func TestLoopIdleWhileStopped(t *testing.T) {
	l, clock := newTestLoop(t)
	for i := 0; i < 5; i++ {
		clock.advance(Interval)
		if mustUpdate(t, l) {
			t.Fatal("stopped loop advanced the board")
		}
	}
	if l.Board().Generation() != 0 {
		t.Fatal("generation moved while stopped")
	}
}

func TestLoopTicksAtInterval(t *testing.T) {
	l, clock := newTestLoop(t)
	l.SetRunning(true)
	if !mustUpdate(t, l) {
		t.Fatal("start must fire the first tick immediately")
	}
	clock.advance(Interval / 2)
	if mustUpdate(t, l) {
		t.Fatal("tick fired before its interval elapsed")
	}
	clock.advance(Interval / 2)
	if !mustUpdate(t, l) {
		t.Fatal("tick did not fire after the interval")
	}
	if got := l.Board().Generation(); got != 2 {
		t.Fatalf("generation = %d, want 2", got)
	}
}

func TestLoopPendingTickAfterStopDoesNotMutate(t *testing.T) {
	l, clock := newTestLoop(t)
	l.SetRunning(true)
	mustUpdate(t, l)
	if !l.Pending() {
		t.Fatal("running loop must keep a tick pending")
	}

	l.SetRunning(false)
	before := l.Board().Grid()
	clock.advance(Interval)
	if mustUpdate(t, l) {
		t.Fatal("stale tick advanced a stopped board")
	}
	if l.Board().Grid() != before {
		t.Fatal("stale tick replaced the grid")
	}
	if l.Pending() {
		t.Fatal("stale tick rescheduled itself")
	}
	clock.advance(10 * Interval)
	if mustUpdate(t, l) {
		t.Fatal("loop kept running after stop")
	}
}

func TestLoopRestartReusesPendingTick(t *testing.T) {
	l, clock := newTestLoop(t)
	l.SetRunning(true)
	mustUpdate(t, l)

	l.SetRunning(false)
	l.SetRunning(true)
	if mustUpdate(t, l) {
		t.Fatal("restart must not add a second tick inside the interval")
	}
	clock.advance(Interval)
	if !mustUpdate(t, l) {
		t.Fatal("pending tick did not resume the loop")
	}
	if mustUpdate(t, l) {
		t.Fatal("two ticks fired for one interval")
	}
	if got := l.Board().Generation(); got != 2 {
		t.Fatalf("generation = %d, want 2", got)
	}
}

func TestLoopTickReadsLatestGrid(t *testing.T) {
	l, clock := newTestLoop(t)
	l.SetRunning(true)
	mustUpdate(t, l)

	if err := l.Board().Reset(ModeEmpty); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if err := l.Board().Toggle(0, 0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	clock.advance(Interval)
	if !mustUpdate(t, l) {
		t.Fatal("tick did not fire")
	}
	if l.Board().Population() != 0 {
		t.Fatal("tick must step the edited grid, where the lone cell dies")
	}
}
