package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/physics"
)

// SpawnerSystem places pickups and aliens and keeps the pickup floors
//
// Pickups are pooled: collecting one relocates it, and a spawn reuses an
// inactive slot of the same kind before allocating a new entity
type SpawnerSystem struct {
	world  *engine.World
	space  *physics.Space
	rng    *rand.Rand
	margin float64
}

// NewSpawnerSystem creates a spawner placing bodies inside space
func NewSpawnerSystem(world *engine.World, space *physics.Space, rng *rand.Rand) *SpawnerSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SpawnerSystem{
		world:  world,
		space:  space,
		rng:    rng,
		margin: constants.SpawnMargin,
	}
}

// Priority returns the system's priority
func (s *SpawnerSystem) Priority() int {
	return constants.PrioritySpawner
}

// Update spawns at most one of each pickup kind below its floor
func (s *SpawnerSystem) Update(world *engine.World, dt time.Duration) {
	if s.ActiveCount(components.KindScrap) < constants.ScrapFloor {
		s.SpawnScrap()
	}
	if s.ActiveCount(components.KindEnergyCell) < constants.EnergyCellFloor {
		s.SpawnEnergy()
	}
}

// Margin returns the inset actually applied for the current bounds
// Bounds smaller than twice the margin shrink it to a quarter of the smaller side
func (s *SpawnerSystem) Margin() float64 {
	w, h := s.space.Bounds()
	if w < 2*s.margin || h < 2*s.margin {
		return math.Min(w, h) / 4
	}
	return s.margin
}

// RandomPosition returns a uniform point inside the inset bounds
// When the space has walls, a few draws are spent looking for a spot clear of them
func (s *SpawnerSystem) RandomPosition(size float64) (x, y float64) {
	w, h := s.space.Bounds()
	m := s.Margin()
	level := s.space.Level()

	for i := 0; i < constants.MaxPlacementAttempts; i++ {
		x = s.between(m, w-m)
		y = s.between(m, h-m)
		if level == nil {
			return x, y
		}
		half := size / 2
		if !level.OverlapsSolid(x-half, y-half, x+half, y+half) {
			return x, y
		}
	}
	return x, y
}

// between draws uniformly from [lo, hi], a degenerate range collapses to its centre
func (s *SpawnerSystem) between(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// SpawnScrap activates one scrap piece at a random position
func (s *SpawnerSystem) SpawnScrap() engine.Entity {
	return s.spawnResource(components.KindScrap, constants.ScrapBoxSize, constants.ScrapScale)
}

// SpawnEnergy activates one energy cell at a random position
func (s *SpawnerSystem) SpawnEnergy() engine.Entity {
	return s.spawnResource(components.KindEnergyCell, constants.EnergyCellBoxSize, constants.EnergyCellScale)
}

func (s *SpawnerSystem) spawnResource(kind components.Kind, size, scale float64) engine.Entity {
	x, y := s.RandomPosition(size)

	if slot, ok := s.inactiveSlot(kind); ok {
		s.world.Resources.Update(slot, func(r *components.ResourceComponent) { r.Active = true })
		s.world.Bodies.Update(slot, func(b *components.BodyComponent) { b.Enabled = true })
		s.space.Relocate(slot, x, y)
		return slot
	}

	eb := s.world.NewEntity()
	engine.With(eb, s.world.Kinds, kind)
	engine.With(eb, s.world.Bodies, components.BodyComponent{X: x, Y: y, W: size, H: size, Enabled: true})
	engine.With(eb, s.world.Resources, components.ResourceComponent{Kind: kind, Scale: scale, Active: true})
	e := eb.Build()
	s.space.Track(e)
	return e
}

func (s *SpawnerSystem) inactiveSlot(kind components.Kind) (engine.Entity, bool) {
	for _, e := range s.world.Resources.GetAllEntities() {
		r, ok := s.world.Resources.GetComponent(e)
		if ok && r.Kind == kind && !r.Active {
			return e, true
		}
	}
	return 0, false
}

// Collect relocates a picked-up item, it stays active
func (s *SpawnerSystem) Collect(item engine.Entity) {
	s.Relocate(item)
}

// deactivate disables an item and leaves it for the next spawn of its kind to reuse
func (s *SpawnerSystem) deactivate(item engine.Entity) {
	if !s.world.Resources.Update(item, func(r *components.ResourceComponent) { r.Active = false }) {
		return
	}
	s.world.Bodies.Update(item, func(b *components.BodyComponent) {
		b.Enabled = false
		b.VX, b.VY = 0, 0
	})
}

// Relocate moves any body to a fresh random position
func (s *SpawnerSystem) Relocate(e engine.Entity) {
	size := constants.EnemyBoxSize
	if b, ok := s.world.Bodies.GetComponent(e); ok {
		size = math.Max(b.W, b.H)
	}
	x, y := s.RandomPosition(size)
	s.space.Relocate(e, x, y)
}

// ActiveCount returns the number of active pickups of kind
func (s *SpawnerSystem) ActiveCount(kind components.Kind) int {
	n := 0
	for _, e := range s.world.Resources.GetAllEntities() {
		if r, ok := s.world.Resources.GetComponent(e); ok && r.Kind == kind && r.Active {
			n++
		}
	}
	return n
}

// PoolSize returns the number of pickup slots of kind, active or not
func (s *SpawnerSystem) PoolSize(kind components.Kind) int {
	n := 0
	for _, e := range s.world.Resources.GetAllEntities() {
		if r, ok := s.world.Resources.GetComponent(e); ok && r.Kind == kind {
			n++
		}
	}
	return n
}

// SpawnEnemy adds one alien at a random position
func (s *SpawnerSystem) SpawnEnemy() engine.Entity {
	x, y := s.RandomPosition(constants.EnemyBoxSize)

	eb := s.world.NewEntity()
	engine.With(eb, s.world.Kinds, components.KindEnemy)
	engine.With(eb, s.world.Bodies, components.BodyComponent{
		X: x, Y: y, W: constants.EnemyBoxSize, H: constants.EnemyBoxSize, Enabled: true,
	})
	engine.With(eb, s.world.Enemies, components.EnemyComponent{Anim: components.EnemyDown})
	e := eb.Build()
	s.space.Track(e)
	return e
}

// SpawnPlayer creates the astronaut at x,y with the given tint
func (s *SpawnerSystem) SpawnPlayer(x, y float64, tint uint32) engine.Entity {
	eb := s.world.NewEntity()
	engine.With(eb, s.world.Kinds, components.KindPlayer)
	engine.With(eb, s.world.Bodies, components.BodyComponent{
		X: x, Y: y, W: constants.PlayerBoxSize, H: constants.PlayerBoxSize, Enabled: true,
	})
	engine.With(eb, s.world.Players, components.PlayerComponent{
		Facing: components.FacingRight,
		Anim:   components.PlayerIdle,
		Tint:   tint,
	})
	e := eb.Build()
	s.space.Track(e)
	return e
}
