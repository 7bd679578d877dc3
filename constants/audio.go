package constants

import "time"

// Audio Engine Constants
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Pickup Sound Timing
const (
	PickupSoundDuration = 120 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupSoundRelease  = 60 * time.Millisecond
)

// Level Up Sound Timing
const (
	LevelUpNoteDuration = 110 * time.Millisecond
	LevelUpNoteAttack   = 5 * time.Millisecond
	LevelUpNoteRelease  = 40 * time.Millisecond
)

// Life Lost Sound Timing
const (
	LifeLostSoundDuration = 250 * time.Millisecond
	LifeLostSoundAttack   = 5 * time.Millisecond
	LifeLostSoundRelease  = 120 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 600 * time.Millisecond
)
