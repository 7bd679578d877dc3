// Package scenes implements the screens of the game, from the loading bar to
// the game over summary, on top of engine.SceneManager.
package scenes

import (
	"context"

	"github.com/lixenwraith/planet-survivor/audio"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/input"
	"github.com/lixenwraith/planet-survivor/logger"
	"github.com/lixenwraith/planet-survivor/render"
	"github.com/lixenwraith/planet-survivor/spectate"
	"github.com/lixenwraith/planet-survivor/storage"
)

// Scene names
const (
	ScenePreloader    = "preloader"
	SceneMenu         = "menu"
	SceneOptions      = "options"
	SceneInstructions = "instructions"
	SceneStory        = "story"
	SceneGame         = "game"
	SceneGameOver     = "gameover"
)

// GameOptions are the run switches set from the command line
type GameOptions struct {
	// Diagonal lets both axes move at once instead of the single-axis priority
	Diagonal bool

	// Seed fixes the RNG, zero seeds from the clock
	Seed int64

	// Level overrides the built-in crash site layout
	Level string
}

// Deps are the services shared by every scene
type Deps struct {
	Ctx      context.Context
	Manager  *engine.SceneManager
	Settings *storage.Settings
	Runs     storage.RunLog // optional
	Audio    audio.Player
	Log      *logger.Logger
	Clock    *engine.PausableClock // optional, paused while the game is paused
	Input    *input.State
	Joystick *input.Joystick // nil when the terminal has no mouse
	Options  GameOptions

	// Quit ends the program, optional
	Quit func()
}

func (d *Deps) ctx() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

func (d *Deps) logger() *logger.Logger {
	if d.Log == nil {
		return logger.Discard()
	}
	return d.Log
}

func (d *Deps) audio() audio.Player {
	if d.Audio == nil {
		return &audio.Silent{}
	}
	return d.Audio
}

func (d *Deps) quit() {
	if d.Quit != nil {
		d.Quit()
	}
}

// Register adds every scene to the manager and makes the menu the fallback
func Register(d *Deps) {
	m := d.Manager
	m.Register(ScenePreloader, func() engine.Scene { return NewPreloader(d) })
	m.Register(SceneMenu, func() engine.Scene { return NewMenu(d) })
	m.Register(SceneOptions, func() engine.Scene { return NewOptions(d) })
	m.Register(SceneInstructions, func() engine.Scene { return NewInstructions(d) })
	m.Register(SceneStory, func() engine.Scene { return NewStory(d) })
	m.Register(SceneGame, func() engine.Scene { return NewGame(d) })
	m.Register(SceneGameOver, func() engine.Scene { return NewGameOver(d) })
	m.SetFallback(SceneMenu)
}

// Render draws the active scene onto c
func Render(m *engine.SceneManager, c *render.Canvas) {
	m.Do(func(_ string, s engine.Scene) {
		if d, ok := s.(render.Drawable); ok {
			d.Render(c)
		}
	})
}

type snapshotter interface {
	Snapshot() spectate.Snapshot
}

// Snapshot returns the spectator view of the active scene
// Scenes without game state report only their name
func Snapshot(m *engine.SceneManager) (spectate.Snapshot, bool) {
	var snap spectate.Snapshot
	found := false
	m.Do(func(name string, s engine.Scene) {
		found = true
		if sn, ok := s.(snapshotter); ok {
			snap = sn.Snapshot()
		}
		snap.Scene = name
	})
	return snap, found
}
