package scenes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/asset"
	"github.com/lixenwraith/planet-survivor/audio"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/input"
	"github.com/lixenwraith/planet-survivor/physics"
	"github.com/lixenwraith/planet-survivor/render"
	"github.com/lixenwraith/planet-survivor/spectate"
	"github.com/lixenwraith/planet-survivor/systems"
	"github.com/lixenwraith/planet-survivor/tilemap"
)

// Game runs the survival loop on the crash site
//
// Every frame: player steering, swarm seeking, physics and overlap callbacks,
// then the pickup floors. A game-time timer drains energy once per second.
// When the last life is lost the run latches and hands its score to the
// game over scene.
type Game struct {
	d *Deps

	level       *tilemap.Map
	world       *engine.World
	space       *physics.Space
	state       *engine.SimulationState
	events      *engine.EventQueue
	router      *engine.EventRouter
	progression *systems.Progression
	spawner     *systems.SpawnerSystem
	timers      *engine.TimerService

	camera  *render.Camera
	effects *render.Effects
	layers  *render.Compositor

	player   engine.Entity
	paused   bool
	finished bool
	handed   bool
}

func NewGame(d *Deps) *Game {
	return &Game{d: d}
}

func (g *Game) Init(engine.SceneData) {}

// Create builds the world; a broken map layout aborts the scene
func (g *Game) Create() error {
	src := g.d.Options.Level
	if src == "" {
		src = asset.DefaultLevel
	}
	level, err := tilemap.Parse(src, constants.TileSize)
	if err != nil {
		return fmt.Errorf("failed to load crash site: %w", err)
	}
	g.level = level

	ctx := g.d.ctx()
	difficulty := g.d.Settings.Difficulty(ctx)
	tint := g.d.Settings.PlayerColor(ctx)

	seed := g.d.Options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.world = engine.NewWorld()
	g.space = physics.NewSpace(g.world, level)
	g.state = engine.NewSimulationState(difficulty)
	g.events = engine.NewEventQueue()
	g.router = engine.NewEventRouter(g.events)
	g.progression = systems.NewProgression(g.state, g.events)
	g.spawner = systems.NewSpawnerSystem(g.world, g.space, rand.New(rand.NewSource(seed)))
	g.timers = engine.NewTimerService()
	g.effects = render.NewEffects()
	g.camera = render.NewCamera()

	g.progression.SpawnEnemy = g.spawner.SpawnEnemy
	g.progression.GameOver = func(int) { g.finished = true }

	g.player = g.spawner.SpawnPlayer(constants.PlayerStartX, constants.PlayerStartY, tint)
	for i := 0; i < constants.InitialEnemyCount; i++ {
		g.spawner.SpawnEnemy()
	}
	for i := 0; i < constants.ScrapFloor; i++ {
		g.spawner.SpawnScrap()
	}
	for i := 0; i < constants.EnergyCellFloor; i++ {
		g.spawner.SpawnEnergy()
	}

	g.world.AddSystem(systems.NewPlayerSystem(g.state, systems.IntentFunc(g.intent), g.d.Options.Diagonal))
	g.world.AddSystem(systems.NewSwarmSystem(g.state))
	g.world.AddSystem(systems.NewPhysicsSystem(g.space))
	g.world.AddSystem(g.spawner)
	systems.RegisterCollisions(g.space, g.spawner, g.progression)

	g.timers.Every(constants.EnergyTickInterval, g.progression.OnEnergyTick)
	g.registerHandlers()

	g.layers = render.NewCompositor()
	g.layers.Register(render.NewTileRenderer(level, g.camera), render.PriorityTiles)
	g.layers.Register(render.NewEntityRenderer(g.world, g.camera, g.effects), render.PriorityActors)
	if g.d.Joystick != nil {
		g.layers.Register(render.NewJoystickRenderer(g.d.Joystick), render.PriorityUI)
	}
	g.layers.Register(render.DrawFunc(g.drawHUD), render.PriorityUI)
	g.layers.Register(render.DrawFunc(g.effects.Apply), render.PriorityOverlay)

	if g.d.Input != nil {
		g.d.Input.Reset()
	}
	g.d.logger().Event("RunStarted", SceneGame, fmt.Sprintf("difficulty=%s seed=%d", difficulty, seed))
	return nil
}

// intent merges the keyboard with the virtual joystick
func (g *Game) intent() input.Intent {
	var in input.Intent
	if g.d.Input != nil {
		in = g.d.Input.Intent()
	}
	if g.d.Joystick != nil {
		in = in.Or(g.d.Joystick.Intent())
	}
	return in
}

// registerHandlers wires gameplay events to sound, screen effects and the log
func (g *Game) registerHandlers() {
	sound := g.d.audio()
	log := g.d.logger()

	cue := func(st audio.SoundType, types ...engine.EventType) {
		g.router.Register(engine.EventHandlerFunc{
			Types: types,
			Fn:    func(*engine.World, engine.GameEvent) { sound.Play(st) },
		})
	}
	cue(audio.SoundPickup, engine.EventScrapCollected)
	cue(audio.SoundEnergy, engine.EventEnergyCollected)
	cue(audio.SoundLevelUp, engine.EventLevelUp)
	cue(audio.SoundLifeLost, engine.EventLifeLost)
	cue(audio.SoundGameOver, engine.EventGameOver)

	g.router.Register(engine.EventHandlerFunc{
		Types: []engine.EventType{engine.EventLevelUp},
		Fn: func(*engine.World, engine.GameEvent) {
			g.effects.Flash(constants.LevelFlashDuration)
		},
	})
	g.router.Register(engine.EventHandlerFunc{
		Types: []engine.EventType{engine.EventLifeLost},
		Fn: func(*engine.World, engine.GameEvent) {
			g.effects.Shake(constants.LifeLostShakeDuration, constants.LifeLostShakeIntensity)
			g.effects.Blink(constants.BlinkPhaseDuration, constants.BlinkRepeats)
		},
	})
	g.router.Register(engine.EventHandlerFunc{
		Types: []engine.EventType{engine.EventGameOver},
		Fn: func(*engine.World, engine.GameEvent) {
			g.effects.Shake(constants.LifeLostShakeDuration, constants.LifeLostShakeIntensity)
		},
	})
	g.router.Register(engine.EventHandlerFunc{
		Types: []engine.EventType{
			engine.EventLevelUp, engine.EventEnemySpawned, engine.EventLifeLost,
			engine.EventEnergyDepleted, engine.EventGameOver,
		},
		Fn: func(_ *engine.World, ev engine.GameEvent) {
			log.Event(ev.Type.String(), SceneGame, fmt.Sprintf("score=%d level=%d energy=%d lives=%d",
				ev.Score, ev.Level, ev.Energy, ev.Lives))
		},
	})
}

func (g *Game) Update(dt time.Duration) {
	if g.paused || g.handed {
		return
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	if !g.state.GameOver {
		g.world.Update(dt)
		g.timers.Advance(dt)
	}
	g.router.DispatchAll(g.world)
	g.effects.Update(dt)

	// The final hit plays out its shake before the game over screen
	if g.finished && !g.handed && !g.effects.Shaking() {
		g.handed = true
		g.d.Manager.Start(SceneGameOver, engine.SceneData{
			"score":      g.state.Score,
			"level":      g.state.Level,
			"difficulty": string(g.state.Difficulty),
		})
	}
}

// Leave releases the run when another scene takes over
func (g *Game) Leave() {
	if g.paused && g.d.Clock != nil {
		g.d.Clock.Resume()
	}
	g.paused = false
	if g.timers != nil {
		g.timers.Clear()
	}
	if g.d.Input != nil {
		g.d.Input.Reset()
	}
}

// TogglePause freezes the simulation and the scheduler clock
func (g *Game) TogglePause() {
	g.paused = !g.paused
	if g.d.Clock != nil {
		if g.paused {
			g.d.Clock.Pause()
		} else {
			g.d.Clock.Resume()
		}
	}
	if g.d.Input != nil {
		g.d.Input.Reset()
	}
}

// Paused reports whether the run is paused
func (g *Game) Paused() bool {
	return g.paused
}

// State returns a copy of the run state
func (g *Game) State() engine.SimulationState {
	return g.state.Snapshot()
}

// World exposes the entity world
func (g *Game) World() *engine.World {
	return g.world
}

// Progression exposes the rules driving the run state
func (g *Game) Progression() *systems.Progression {
	return g.progression
}

// Player returns the astronaut entity
func (g *Game) Player() engine.Entity {
	return g.player
}

// Snapshot returns the spectator view of the run
func (g *Game) Snapshot() spectate.Snapshot {
	s := g.state.Snapshot()
	return spectate.Snapshot{
		Scene:      SceneGame,
		Score:      s.Score,
		Level:      s.Level,
		Energy:     s.Energy,
		Lives:      s.Lives,
		GameOver:   s.GameOver,
		Paused:     g.paused,
		Difficulty: string(s.Difficulty),
		Enemies:    g.world.Enemies.CountEntities(),
	}
}

func (g *Game) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.d.Manager.Start(SceneMenu, nil)
		return
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'p' || r == 'P' {
			g.TogglePause()
			return
		}
	}
	if g.paused || g.d.Input == nil {
		return
	}
	g.d.Input.HandleKey(ev)
}

func (g *Game) HandleMouse(ev *tcell.EventMouse) {
	if g.d.Joystick != nil && !g.paused {
		g.d.Joystick.HandleMouse(ev)
	}
}

func (g *Game) Render(c *render.Canvas) {
	cols, rows := c.Size()
	g.camera.Resize(cols, rows)
	if body, ok := g.world.Bodies.GetComponent(g.player); ok {
		g.camera.Follow(body.X, body.Y, g.level.Width(), g.level.Height())
	}
	if g.d.Joystick != nil {
		rc, rr := g.d.Joystick.Radius()
		g.d.Joystick.SetBase(rc+2, rows-rr-2)
	}

	g.layers.Render(c)

	if g.paused {
		c.CenterText(rows/2, " PAUSED - press P to resume ", render.ColorTitle)
	}
}

func (g *Game) drawHUD(c *render.Canvas) {
	render.DrawHUD(c, g.state.Snapshot(), g.paused)
}
