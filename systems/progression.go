package systems

import (
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
)

// Progression applies score, energy and life rules to a SimulationState
//
// Running -> GameOver is a one-way latch: once GameOver is set every
// operation is a no-op. Values are clamped in place, nothing returns an error
type Progression struct {
	state  *engine.SimulationState
	events *engine.EventQueue

	// SpawnEnemy grows the swarm on even levels, nil disables growth
	SpawnEnemy func() engine.Entity

	// GameOver receives the final score once, when the latch is set
	GameOver func(score int)
}

// NewProgression creates a tracker over state, events may be nil
func NewProgression(state *engine.SimulationState, events *engine.EventQueue) *Progression {
	return &Progression{
		state:  state,
		events: events,
	}
}

// State returns the tracked state
func (p *Progression) State() *engine.SimulationState {
	return p.state
}

// OnCollectScrap scores a scrap pickup and levels up on each multiple of the level step
func (p *Progression) OnCollectScrap() {
	if p.state.GameOver {
		return
	}
	p.state.Score += constants.ScrapValue
	p.clamp()
	p.emit(engine.EventScrapCollected, 0)

	if p.state.Score%constants.LevelScoreStep == 0 {
		p.levelUp()
	}
}

// OnCollectEnergyCell refills energy up to the cap
func (p *Progression) OnCollectEnergyCell() {
	if p.state.GameOver {
		return
	}
	p.state.Energy += constants.EnergyCellRestore
	p.clamp()
	p.emit(engine.EventEnergyCollected, 0)
}

// OnEnergyTick drains energy, an empty tank is refilled at the cost of a life
func (p *Progression) OnEnergyTick() {
	if p.state.GameOver {
		return
	}
	p.state.Energy -= constants.EnergyDecayPerTick
	if p.state.Energy <= 0 {
		p.state.Energy = constants.MaxEnergy
		p.emit(engine.EventEnergyDepleted, 0)
		p.LoseLife()
		return
	}
	p.clamp()
}

// OnEnemyContact costs a life
func (p *Progression) OnEnemyContact() {
	if p.state.GameOver {
		return
	}
	p.LoseLife()
}

// LoseLife removes a life and latches game over when none remain
func (p *Progression) LoseLife() {
	if p.state.GameOver {
		return
	}
	p.state.Lives--
	if p.state.Lives <= 0 {
		p.state.Lives = 0
		p.state.GameOver = true
		p.emit(engine.EventGameOver, 0)
		if p.GameOver != nil {
			p.GameOver(p.state.Score)
		}
		return
	}
	p.emit(engine.EventLifeLost, 0)
}

func (p *Progression) levelUp() {
	p.state.Level++
	p.emit(engine.EventLevelUp, 0)

	if p.state.Level%constants.EnemyLevelInterval == 0 && p.SpawnEnemy != nil {
		e := p.SpawnEnemy()
		p.emit(engine.EventEnemySpawned, e)
	}
}

// clamp keeps every counter in range
func (p *Progression) clamp() {
	s := p.state
	if s.Score < 0 {
		s.Score = 0
	}
	if s.Energy > constants.MaxEnergy {
		s.Energy = constants.MaxEnergy
	}
	if s.Energy < 0 {
		s.Energy = 0
	}
	if s.Lives < 0 {
		s.Lives = 0
	}
	if s.Level < constants.StartLevel {
		s.Level = constants.StartLevel
	}
}

func (p *Progression) emit(t engine.EventType, e engine.Entity) {
	if p.events == nil {
		return
	}
	p.events.Push(engine.GameEvent{
		Type:   t,
		Score:  p.state.Score,
		Level:  p.state.Level,
		Energy: p.state.Energy,
		Lives:  p.state.Lives,
		Entity: e,
	})
}
