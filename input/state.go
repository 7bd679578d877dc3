package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-survivor/engine"
)

// State tracks which directions are held
//
// Terminals report key presses and auto-repeat but never key releases, so a
// direction counts as held until hold has passed since its last press
type State struct {
	mu        sync.Mutex
	keys      *KeyTable
	clock     engine.TimeProvider
	hold      time.Duration
	pressedAt [directionCount]time.Time
	pressed   [directionCount]bool
}

// NewState creates a state over the default key table
func NewState(clock engine.TimeProvider, hold time.Duration) *State {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &State{
		keys:  DefaultKeyTable(),
		clock: clock,
		hold:  hold,
	}
}

// HandleKey records a bound key press, returns false for unbound keys
func (s *State) HandleKey(ev *tcell.EventKey) bool {
	d, ok := s.keys.Lookup(ev)
	if !ok {
		return false
	}
	s.Press(d)
	return true
}

// Press marks d as held, releasing the opposite direction
func (s *State) Press(d Direction) {
	if d >= directionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed[d] = true
	s.pressedAt[d] = s.clock.Now()
	s.pressed[d.Opposite()] = false
}

// Release marks d as no longer held
func (s *State) Release(d Direction) {
	if d >= directionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed[d] = false
}

// Reset releases every direction
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed = [directionCount]bool{}
}

// Intent returns the directions currently held
func (s *State) Intent() Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var in Intent
	for d := Direction(0); d < directionCount; d++ {
		if !s.pressed[d] {
			continue
		}
		if now.Sub(s.pressedAt[d]) > s.hold {
			s.pressed[d] = false
			continue
		}
		in = in.With(d)
	}
	return in
}
