package systems

import (
	"time"

	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/physics"
)

// PhysicsSystem moves bodies and dispatches overlap callbacks
type PhysicsSystem struct {
	space *physics.Space
}

// NewPhysicsSystem wraps space as a system
func NewPhysicsSystem(space *physics.Space) *PhysicsSystem {
	return &PhysicsSystem{space: space}
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

// Update integrates by dt then fires overlaps
func (s *PhysicsSystem) Update(world *engine.World, dt time.Duration) {
	s.space.Step(dt)
	s.space.Overlaps()
}
