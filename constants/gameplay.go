package constants

// World Constants (world units; the crash site is laid out in 32-unit tiles)
const (
	// DefaultWorldWidth is used when the map reports no bounds
	DefaultWorldWidth = 800.0

	// DefaultWorldHeight is used when the map reports no bounds
	DefaultWorldHeight = 600.0

	// TileSize is the edge of one map tile
	TileSize = 32.0

	// SpawnMargin insets random placement from the world edges
	SpawnMargin = 100.0
)

// Player Constants
const (
	// PlayerSpeed is the fixed movement speed in units per second
	PlayerSpeed = 200.0

	// PlayerStartX is the spawn position of the astronaut
	PlayerStartX = 200.0

	// PlayerStartY is the spawn position of the astronaut
	PlayerStartY = 200.0

	// PlayerBoxSize is the edge of the player's collision box
	PlayerBoxSize = 40.0

	// DefaultPlayerColor is the tint used when no color is stored
	DefaultPlayerColor = 0xffffff
)

// Enemy Constants
const (
	// EnemySpeedEasy is the base pursuit speed on easy difficulty
	EnemySpeedEasy = 40.0

	// EnemySpeedNormal is the base pursuit speed on normal difficulty
	EnemySpeedNormal = 80.0

	// EnemySpeedHard is the base pursuit speed on hard difficulty
	EnemySpeedHard = 120.0

	// EnemySpeedPerLevel is added to the base speed for every level
	EnemySpeedPerLevel = 10.0

	// EnemyBoxSize is the edge of an alien's collision box
	EnemyBoxSize = 40.0

	// EnemyLevelInterval adds one alien every N levels
	EnemyLevelInterval = 2

	// InitialEnemyCount is the swarm size at scene start
	InitialEnemyCount = 1
)

// Resource Constants
const (
	// ScrapFloor is the minimum number of active scrap pieces
	ScrapFloor = 5

	// EnergyCellFloor is the minimum number of active energy cells
	EnergyCellFloor = 3

	// ScrapScale is the visual scale of a scrap sprite
	ScrapScale = 0.03

	// EnergyCellScale is the visual scale of an energy cell sprite
	EnergyCellScale = 0.08

	// ScrapBoxSize is the edge of a scrap pickup box
	ScrapBoxSize = 24.0

	// EnergyCellBoxSize is the edge of an energy cell pickup box
	EnergyCellBoxSize = 24.0
)

// Progression Constants
const (
	// ScrapValue is the score awarded per scrap collected
	ScrapValue = 10

	// LevelScoreStep levels up every time the score hits a multiple of this
	LevelScoreStep = 100

	// StartLevel is the level at scene start
	StartLevel = 1

	// StartLives is the number of lives at scene start
	StartLives = 3
)

// Energy Constants
const (
	// MaxEnergy is the energy ceiling and the reset value after depletion
	MaxEnergy = 100

	// EnergyCellRestore is the energy gained per cell
	EnergyCellRestore = 20

	// EnergyDecayPerTick is the energy lost on each energy timer tick
	EnergyDecayPerTick = 2

	// EnergyCriticalThreshold turns the HUD energy readout red at or below this value
	EnergyCriticalThreshold = 20
)
