package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = time.Second / 60

	// MaxFrameDelta caps the dt handed to a single simulation step after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// EnergyTickInterval is the fixed interval of the energy drain timer
	EnergyTickInterval = 1 * time.Second

	// SpectatorPublishInterval is how often HUD snapshots go out to spectators
	SpectatorPublishInterval = 100 * time.Millisecond
)

// Scene Timing Constants
const (
	// PreloadDuration is the length of the loading bar animation
	PreloadDuration = 3 * time.Second

	// StoryFlyInDuration is how long the ship takes to reach the screen centre
	StoryFlyInDuration = 4 * time.Second

	// StoryAlertDuration is the asteroid alert phase
	StoryAlertDuration = 3 * time.Second

	// StoryExplosionDuration is the cargo ejection phase
	StoryExplosionDuration = 2 * time.Second

	// StoryLandingDuration is the astronaut drop phase
	StoryLandingDuration = 2 * time.Second

	// StoryStarCount is the number of background stars in the intro
	StoryStarCount = 100

	// StoryDebrisCount is the number of scrap pieces thrown by the explosion
	StoryDebrisCount = 50
)
