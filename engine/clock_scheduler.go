package engine

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/planet-survivor/logger"
)

// TickFunc advances the simulation by dt
type TickFunc func(dt time.Duration)

// ClockScheduler runs game logic on a fixed tick
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	clock        *PausableClock
	tickInterval time.Duration
	tick         TickFunc
	log          *logger.Logger

	mu               sync.Mutex
	nextTickDeadline time.Time

	tickCount    atomic.Uint64
	droppedTicks atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler calling tick every tickInterval of game time
func NewClockScheduler(clock *PausableClock, tickInterval time.Duration, tick TickFunc, log *logger.Logger) *ClockScheduler {
	if log == nil {
		log = logger.Discard()
	}
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		tick:         tick,
		log:          log,
		stopChan:     make(chan struct{}),
	}
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// DroppedTicks returns the number of ticks lost to a recovered panic
func (cs *ClockScheduler) DroppedTicks() uint64 {
	return cs.droppedTicks.Load()
}

// Stop halts a running loop, safe to call more than once
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
}

// Run blocks running the scheduling loop until ctx is done or Stop is called
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return fmt.Errorf("clock scheduler already running")
	}
	defer cs.running.Store(false)

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-cs.stopChan:
			return nil
		default:
		}

		var sleepDuration time.Duration
		if cs.clock.IsPaused() {
			// Longer sleep while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.clock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !gameNow.Before(deadline) {
				cs.safeTick(cs.tickInterval)

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Drop missed ticks instead of bursting after a stall
				maxBehind := cs.tickInterval * 2
				if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				sleepDuration = deadline.Sub(cs.clock.Now())
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			case <-cs.stopChan:
				return nil
			}
		}
	}
}

// safeTick runs one tick, a panic drops the frame and is logged
func (cs *ClockScheduler) safeTick(dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			cs.droppedTicks.Add(1)
			cs.log.Errorf("tick %d panicked, frame dropped: %v\n%s", cs.tickCount.Load(), r, debug.Stack())
		}
	}()
	cs.tick(dt)
	cs.tickCount.Add(1)
}
