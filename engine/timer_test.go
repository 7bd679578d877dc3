package engine

import (
	"testing"
	"time"
)

func TestTimerEveryFiresOncePerInterval(t *testing.T) {
	ts := NewTimerService()
	count := 0
	ts.Every(time.Second, func() { count++ })

	// 59 frames at 60 Hz are just short of one second
	frame := time.Second / 60
	for i := 0; i < 59; i++ {
		ts.Advance(frame)
	}
	if count != 0 {
		t.Fatalf("Expected no tick before 1s, got %d", count)
	}
	ts.Advance(frame + time.Millisecond)
	if count != 1 {
		t.Errorf("Expected 1 tick after 1s, got %d", count)
	}

	// A long stall fires every missed occurrence
	ts.Advance(3 * time.Second)
	if count != 4 {
		t.Errorf("Expected 4 ticks after 4s, got %d", count)
	}
}

func TestTimerAfterFiresOnce(t *testing.T) {
	ts := NewTimerService()
	fired := 0
	ts.After(500*time.Millisecond, func() { fired++ })

	ts.Advance(499 * time.Millisecond)
	if fired != 0 {
		t.Fatal("Expected timer not yet fired")
	}
	ts.Advance(time.Millisecond)
	ts.Advance(time.Second)
	if fired != 1 {
		t.Errorf("Expected exactly one call, got %d", fired)
	}
	if ts.Pending() != 0 {
		t.Errorf("Expected one-shot timer removed, %d pending", ts.Pending())
	}
}

func TestTimerCancelAndOrdering(t *testing.T) {
	ts := NewTimerService()
	var order []string

	ts.After(300*time.Millisecond, func() { order = append(order, "late") })
	ts.After(100*time.Millisecond, func() { order = append(order, "early") })
	cancelled := ts.After(200*time.Millisecond, func() { order = append(order, "cancelled") })
	ts.Cancel(cancelled)

	ts.Advance(time.Second)

	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("Expected [early late], got %v", order)
	}
}

func TestTimerCallbackCanSchedule(t *testing.T) {
	ts := NewTimerService()
	var chained bool
	ts.After(100*time.Millisecond, func() {
		ts.After(100*time.Millisecond, func() { chained = true })
	})

	ts.Advance(250 * time.Millisecond)
	if !chained {
		t.Error("Expected chained timer to fire within the same advance")
	}
	if got := ts.Elapsed(); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms elapsed, got %v", got)
	}
}

func TestTimerCallbackCanCancelItself(t *testing.T) {
	ts := NewTimerService()
	count := 0
	var id TimerID
	id = ts.Every(100*time.Millisecond, func() {
		count++
		if count == 2 {
			ts.Cancel(id)
		}
	})
	ts.Advance(time.Second)
	if count != 2 {
		t.Errorf("Expected 2 calls before self-cancel, got %d", count)
	}
}
