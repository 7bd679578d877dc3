package engine

import (
	"github.com/lixenwraith/planet-survivor/constants"
)

// SimulationState is the single source of truth for a run
// Read by the HUD, the spectator feed and the termination check
type SimulationState struct {
	Score      int
	Level      int
	Energy     int
	Lives      int
	GameOver   bool
	Difficulty Difficulty
}

// NewSimulationState returns the state at scene start
func NewSimulationState(d Difficulty) *SimulationState {
	return &SimulationState{
		Score:      0,
		Level:      constants.StartLevel,
		Energy:     constants.MaxEnergy,
		Lives:      constants.StartLives,
		Difficulty: d,
	}
}

// EnemySpeed returns baseSpeed(difficulty) + level*10
func (s *SimulationState) EnemySpeed() float64 {
	return s.Difficulty.BaseSpeed() + float64(s.Level)*constants.EnemySpeedPerLevel
}

// Snapshot returns a copy safe to hand to other goroutines
func (s *SimulationState) Snapshot() SimulationState {
	return *s
}

// EnergyCritical reports whether the HUD should warn about energy
func (s SimulationState) EnergyCritical() bool {
	return s.Energy <= constants.EnergyCriticalThreshold
}
