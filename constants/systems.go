package constants

// System Priorities (lower runs first)
const (
	// PriorityPlayer turns input into player velocity
	PriorityPlayer = 10

	// PrioritySwarm steers every alien toward the player
	PrioritySwarm = 20

	// PriorityPhysics integrates velocities and fires overlap callbacks
	PriorityPhysics = 30

	// PrioritySpawner enforces the pickup population floors at the end of the frame
	PrioritySpawner = 90
)

// Placement
const (
	// MaxPlacementAttempts bounds the search for a spawn point clear of walls
	MaxPlacementAttempts = 8
)
