package systems

import (
	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/physics"
)

// RegisterCollisions wires the three player overlaps to the spawner and progression
func RegisterCollisions(space *physics.Space, spawner *SpawnerSystem, progression *Progression) {
	state := progression.State()

	space.OnOverlap(components.KindPlayer, components.KindScrap, func(_, item engine.Entity) {
		if state.GameOver {
			return
		}
		spawner.Collect(item)
		progression.OnCollectScrap()
	})

	space.OnOverlap(components.KindPlayer, components.KindEnergyCell, func(_, item engine.Entity) {
		if state.GameOver {
			return
		}
		spawner.Collect(item)
		progression.OnCollectEnergyCell()
	})

	space.OnOverlap(components.KindPlayer, components.KindEnemy, func(_, enemy engine.Entity) {
		if state.GameOver {
			return
		}
		spawner.Relocate(enemy)
		progression.OnEnemyContact()
	})
}
