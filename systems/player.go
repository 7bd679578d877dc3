package systems

import (
	"time"

	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/input"
)

// IntentSource supplies the merged directional input for a frame
type IntentSource interface {
	Intent() input.Intent
}

// IntentFunc adapts a function to IntentSource
type IntentFunc func() input.Intent

// Intent calls f
func (f IntentFunc) Intent() input.Intent { return f() }

// Steering is the player's velocity and presentation for one frame
type Steering struct {
	VX, VY float64
	Anim   components.PlayerAnim

	// Facing is only meaningful when Flip is set
	Facing components.Facing
	Flip   bool
}

// Steer applies the movement policy
// Single axis: left > right > up > down. Diagonal drives X and Y independently
func Steer(in input.Intent, speed float64, diagonal bool) Steering {
	var s Steering

	switch {
	case in.Left:
		s.VX, s.Anim, s.Facing, s.Flip = -speed, components.PlayerSide, components.FacingLeft, true
	case in.Right:
		s.VX, s.Anim, s.Facing, s.Flip = speed, components.PlayerSide, components.FacingRight, true
	}
	if s.Flip && !diagonal {
		return s
	}

	switch {
	case in.Up:
		s.VY = -speed
		if !s.Flip {
			s.Anim = components.PlayerUp
		}
	case in.Down:
		s.VY = speed
		if !s.Flip {
			s.Anim = components.PlayerDown
		}
	}
	return s
}

// PlayerSystem turns input into player velocity
type PlayerSystem struct {
	state    *engine.SimulationState
	source   IntentSource
	diagonal bool
}

// NewPlayerSystem creates the player controller
func NewPlayerSystem(state *engine.SimulationState, source IntentSource, diagonal bool) *PlayerSystem {
	return &PlayerSystem{
		state:    state,
		source:   source,
		diagonal: diagonal,
	}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update sets the player's velocity from the current intent
func (s *PlayerSystem) Update(world *engine.World, dt time.Duration) {
	if s.state.GameOver {
		return
	}
	player, ok := world.Player()
	if !ok {
		return
	}

	var in input.Intent
	if s.source != nil {
		in = s.source.Intent()
	}
	steer := Steer(in, constants.PlayerSpeed, s.diagonal)

	world.Bodies.Update(player, func(b *components.BodyComponent) {
		b.VX, b.VY = steer.VX, steer.VY
	})
	world.Players.Update(player, func(p *components.PlayerComponent) {
		p.Anim = steer.Anim
		if steer.Flip {
			p.Facing = steer.Facing
		}
	})
}
