package engine

import (
	"strings"

	"github.com/lixenwraith/planet-survivor/constants"
)

// Difficulty selects the swarm's base speed
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a stored string to a difficulty
// Unknown values fall back to normal and report false
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return DifficultyNormal, false
	}
}

// BaseSpeed returns the enemy speed at level zero
func (d Difficulty) BaseSpeed() float64 {
	switch d {
	case DifficultyEasy:
		return constants.EnemySpeedEasy
	case DifficultyHard:
		return constants.EnemySpeedHard
	default:
		return constants.EnemySpeedNormal
	}
}

// Next cycles normal -> hard -> easy -> normal, as the options screen does
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyNormal:
		return DifficultyHard
	case DifficultyHard:
		return DifficultyEasy
	default:
		return DifficultyNormal
	}
}

// Label returns the display name
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}
