package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
)

// Seek returns the velocity moving from ex,ey straight at px,py at speed
// Coincident positions give zero velocity
func Seek(ex, ey, px, py, speed float64) (vx, vy float64) {
	dx, dy := px-ex, py-ey
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist * speed, dy / dist * speed
}

// EnemyAnimFor picks the animation from the dominant velocity axis
func EnemyAnimFor(vx, vy float64) components.EnemyAnim {
	if math.Abs(vx) > math.Abs(vy) {
		if vx > 0 {
			return components.EnemyRight
		}
		return components.EnemyLeft
	}
	if vy > 0 {
		return components.EnemyDown
	}
	return components.EnemyUp
}

// SwarmSystem steers every alien toward the player
type SwarmSystem struct {
	state *engine.SimulationState
}

// NewSwarmSystem creates the swarm AI
func NewSwarmSystem(state *engine.SimulationState) *SwarmSystem {
	return &SwarmSystem{state: state}
}

// Priority returns the system's priority
func (s *SwarmSystem) Priority() int {
	return constants.PrioritySwarm
}

// Update recomputes each enemy's velocity, speed follows difficulty and level
func (s *SwarmSystem) Update(world *engine.World, dt time.Duration) {
	if s.state.GameOver {
		return
	}
	player, ok := world.Player()
	if !ok {
		return
	}
	target, ok := world.Bodies.GetComponent(player)
	if !ok {
		return
	}

	speed := s.state.EnemySpeed()
	for _, e := range world.Enemies.GetAllEntities() {
		var vx, vy float64
		if !world.Bodies.Update(e, func(b *components.BodyComponent) {
			b.VX, b.VY = Seek(b.X, b.Y, target.X, target.Y, speed)
			vx, vy = b.VX, b.VY
		}) {
			continue
		}
		anim := EnemyAnimFor(vx, vy)
		world.Enemies.Update(e, func(c *components.EnemyComponent) { c.Anim = anim })
	}
}
