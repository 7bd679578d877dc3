package constants

import "time"

// Terminal Projection Constants
const (
	// CellWidth is the number of world units covered by one terminal column
	CellWidth = 8.0

	// CellHeight is the number of world units covered by one terminal row
	CellHeight = 16.0

	// HUDRows is the number of rows reserved at the top for the HUD
	HUDRows = 2
)

// Input Constants
const (
	// KeyHoldWindow keeps a direction pressed after its last key event (terminals report no key release)
	KeyHoldWindow = 220 * time.Millisecond

	// JoystickRadius is the virtual joystick radius in world units
	JoystickRadius = 50.0

	// JoystickForceMin is the minimum drag distance before a direction registers
	JoystickForceMin = 16.0
)

// Feedback Effect Constants
const (
	// LevelFlashDuration is the white flash on level up
	LevelFlashDuration = 500 * time.Millisecond

	// LifeLostShakeDuration is the camera shake on life loss
	LifeLostShakeDuration = 200 * time.Millisecond

	// LifeLostShakeIntensity is the shake amplitude as a fraction of the view
	LifeLostShakeIntensity = 0.02

	// BlinkPhaseDuration is one fade (out or in) of the player blink
	BlinkPhaseDuration = 100 * time.Millisecond

	// BlinkRepeats is the number of extra yoyo cycles after the first
	BlinkRepeats = 3

	// NewRecordFlashDuration is the flash on the game over screen when a record is set
	NewRecordFlashDuration = 1 * time.Second
)
