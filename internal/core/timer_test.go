package core

import (
	"testing"
	"time"
)

func TestFixedStepDeadline(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.SetClock(func() time.Time { return now })

	if fs.Due() {
		t.Fatal("unarmed timer reported due")
	}
	fs.Schedule()
	now = now.Add(99 * time.Millisecond)
	if fs.Due() {
		t.Fatal("timer fired early")
	}
	now = now.Add(time.Millisecond)
	if !fs.Due() {
		t.Fatal("timer did not fire at its deadline")
	}
	if fs.Armed() || fs.Due() {
		t.Fatal("timer must disarm after firing")
	}

	fs.ScheduleNow()
	if !fs.Due() {
		t.Fatal("ScheduleNow must fire on the next poll")
	}
}

func TestFixedStepIntervalDefault(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", fs.Interval())
	}
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", fs.Interval())
	}
}
