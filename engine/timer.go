package engine

import (
	"sync"
	"time"
)

// TimerID identifies a scheduled callback
type TimerID uint64

type timer struct {
	id       TimerID
	due      time.Duration
	interval time.Duration
	repeat   bool
	fn       func()
}

// TimerService schedules callbacks against game time
// Time only moves through Advance, so callbacks run on the goroutine that advances it
type TimerService struct {
	mu     sync.Mutex
	now    time.Duration
	nextID TimerID
	timers map[TimerID]*timer
}

// NewTimerService creates a timer service at game time zero
func NewTimerService() *TimerService {
	return &TimerService{
		nextID: 1,
		timers: make(map[TimerID]*timer),
	}
}

// Every schedules fn to run once per interval of game time
// Non-positive intervals are raised to one millisecond
func (ts *TimerService) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return ts.add(interval, interval, true, fn)
}

// After schedules fn to run once after delay of game time
func (ts *TimerService) After(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	return ts.add(delay, 0, false, fn)
}

func (ts *TimerService) add(delay, interval time.Duration, repeat bool, fn func()) TimerID {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	id := ts.nextID
	ts.nextID++
	ts.timers[id] = &timer{
		id:       id,
		due:      ts.now + delay,
		interval: interval,
		repeat:   repeat,
		fn:       fn,
	}
	return id
}

// Cancel removes a scheduled callback, unknown IDs are ignored
func (ts *TimerService) Cancel(id TimerID) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	delete(ts.timers, id)
}

// Clear cancels every scheduled callback
func (ts *TimerService) Clear() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.timers = make(map[TimerID]*timer)
}

// Pending returns the number of scheduled callbacks
func (ts *TimerService) Pending() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.timers)
}

// Elapsed returns the game time consumed so far
func (ts *TimerService) Elapsed() time.Duration {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.now
}

// Advance moves game time forward by dt and fires every due occurrence in order
// A repeating timer that fell behind fires once per missed interval
func (ts *TimerService) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}

	ts.mu.Lock()
	target := ts.now + dt
	ts.mu.Unlock()

	for {
		ts.mu.Lock()
		next := ts.nextDue(target)
		if next == nil {
			ts.now = target
			ts.mu.Unlock()
			return
		}
		ts.now = next.due
		fn := next.fn
		if next.repeat {
			next.due += next.interval
		} else {
			delete(ts.timers, next.id)
		}
		ts.mu.Unlock()

		// Lock released so callbacks can schedule or cancel timers
		fn()
	}
}

// nextDue returns the earliest timer due at or before target, ties broken by ID
func (ts *TimerService) nextDue(target time.Duration) *timer {
	var best *timer
	for _, t := range ts.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
