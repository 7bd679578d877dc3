package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/logger"
)

// Setting keys
const (
	KeyPlayerColor = "playerColor"
	KeyDifficulty  = "difficulty"
	KeyMuted       = "muted"
	KeyHighScore   = "survivor_highscore"
)

// PlayerColors is the options screen cycle: white, red, blue, green
var PlayerColors = []uint32{0xffffff, 0xff0000, 0x0000ff, 0x00ff00}

// Settings reads and writes typed values over a Store
// Missing or unparseable values fall back to their defaults and are logged
type Settings struct {
	store Store
	log   *logger.Logger
}

// NewSettings wraps store
func NewSettings(store Store, log *logger.Logger) *Settings {
	if log == nil {
		log = logger.Discard()
	}
	return &Settings{store: store, log: log}
}

// read returns the raw value, ok is false for missing keys and read errors
func (s *Settings) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warnf("reading %s failed, using default: %v", key, err)
		return "", false
	}
	return v, ok
}

// PlayerColor returns the astronaut tint as 0xRRGGBB
func (s *Settings) PlayerColor(ctx context.Context) uint32 {
	raw, ok := s.read(ctx, KeyPlayerColor)
	if !ok {
		return constants.DefaultPlayerColor
	}
	c, err := strconv.ParseUint(strings.TrimSpace(raw), 0, 32)
	if err != nil || c == 0 || c > 0xffffff {
		s.log.Warnf("invalid %s %q, using default", KeyPlayerColor, raw)
		return constants.DefaultPlayerColor
	}
	return uint32(c)
}

// SetPlayerColor stores the tint
func (s *Settings) SetPlayerColor(ctx context.Context, color uint32) error {
	return s.store.Set(ctx, KeyPlayerColor, fmt.Sprintf("0x%06x", color&0xffffff))
}

// NextPlayerColor returns the color after current in the cycle
// Colors outside the cycle restart it at white
func NextPlayerColor(current uint32) uint32 {
	for i, c := range PlayerColors {
		if c == current {
			return PlayerColors[(i+1)%len(PlayerColors)]
		}
	}
	return PlayerColors[0]
}

// PlayerColorName returns the display name of a cycle color
func PlayerColorName(c uint32) string {
	switch c {
	case 0xffffff:
		return "WHITE"
	case 0xff0000:
		return "RED"
	case 0x0000ff:
		return "BLUE"
	case 0x00ff00:
		return "GREEN"
	default:
		return fmt.Sprintf("#%06X", c)
	}
}

// Difficulty returns the stored difficulty
func (s *Settings) Difficulty(ctx context.Context) engine.Difficulty {
	raw, ok := s.read(ctx, KeyDifficulty)
	if !ok {
		return engine.DifficultyNormal
	}
	d, valid := engine.ParseDifficulty(raw)
	if !valid {
		s.log.Warnf("invalid %s %q, using default", KeyDifficulty, raw)
	}
	return d
}

// SetDifficulty stores the difficulty
func (s *Settings) SetDifficulty(ctx context.Context, d engine.Difficulty) error {
	return s.store.Set(ctx, KeyDifficulty, string(d))
}

// Muted reports whether sound effects are off
func (s *Settings) Muted(ctx context.Context) bool {
	raw, ok := s.read(ctx, KeyMuted)
	if !ok {
		return false
	}
	m, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		s.log.Warnf("invalid %s %q, using default", KeyMuted, raw)
		return false
	}
	return m
}

// SetMuted stores the mute flag
func (s *Settings) SetMuted(ctx context.Context, muted bool) error {
	return s.store.Set(ctx, KeyMuted, strconv.FormatBool(muted))
}

// HighScore returns the best recorded score
func (s *Settings) HighScore(ctx context.Context) int {
	raw, ok := s.read(ctx, KeyHighScore)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		s.log.Warnf("invalid %s %q, using default", KeyHighScore, raw)
		return 0
	}
	return n
}

// SubmitScore stores score when it beats the high score
// Returns whether it is a new record and the best score after the call
func (s *Settings) SubmitScore(ctx context.Context, score int) (newRecord bool, best int, err error) {
	best = s.HighScore(ctx)
	if score <= best {
		return false, best, nil
	}
	if err := s.store.Set(ctx, KeyHighScore, strconv.Itoa(score)); err != nil {
		return true, score, fmt.Errorf("failed to store high score: %w", err)
	}
	return true, score, nil
}
