// Package audio plays the game's sound cues through the system speaker.
// Without an audio device the game runs with a silent player.
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/logger"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPickup   SoundType = iota // Scrap collected
	SoundEnergy                    // Energy cell collected
	SoundLevelUp                   // Level increased
	SoundLifeLost                  // Enemy contact or energy depletion
	SoundGameOver                  // Last life lost
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundPickup:
		return "pickup"
	case SoundEnergy:
		return "energy"
	case SoundLevelUp:
		return "level_up"
	case SoundLifeLost:
		return "life_lost"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is what scenes use to trigger sounds
type Player interface {
	Play(st SoundType) bool
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// SoundManager plays effects on the speaker through a single mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a sound manager, the speaker is opened by Initialize
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 0.5,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a sound, returns false when nothing will be heard
func (sm *SoundManager) Play(st SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	s := GetSoundEffect(st, sampleRate, sm.volume)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// SetMuted enables or disables playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Close stops all active sounds
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Silent is a Player that never makes a sound
type Silent struct {
	muted atomic.Bool
}

func (s *Silent) Play(SoundType) bool { return false }
func (s *Silent) SetMuted(muted bool) { s.muted.Store(muted) }
func (s *Silent) Muted() bool         { return s.muted.Load() }
func (s *Silent) Close()              {}

// Open returns a speaker-backed player, or a silent one when no device is available
func Open(log *logger.Logger, muted bool) Player {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		if log != nil {
			log.Warnf("audio unavailable, continuing silently: %v", err)
		}
		s := &Silent{}
		s.SetMuted(muted)
		return s
	}
	sm.SetMuted(muted)
	return sm
}
