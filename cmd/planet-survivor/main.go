package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/planet-survivor/audio"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/core"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/input"
	"github.com/lixenwraith/planet-survivor/logger"
	"github.com/lixenwraith/planet-survivor/render"
	"github.com/lixenwraith/planet-survivor/scenes"
	"github.com/lixenwraith/planet-survivor/spectate"
	"github.com/lixenwraith/planet-survivor/status"
	"github.com/lixenwraith/planet-survivor/storage"
)

var (
	dbFlag       = flag.String("db", "planet-survivor.db", "SQLite file for settings, high score and run history")
	logFlag      = flag.String("log", "planet-survivor.log", "Log file path")
	tickFlag     = flag.Duration("tick", constants.FrameUpdateInterval, "Simulation tick interval")
	spectateFlag = flag.String("spectate", "", "Serve a websocket spectator feed on this address, e.g. :8080")
	diagonalFlag = flag.Bool("diagonal", false, "Allow diagonal movement")
	colorFlag    = flag.String("color", "", "Astronaut color: white, red, blue, green or 0xRRGGBB")
	seedFlag     = flag.Int64("seed", 0, "RNG seed, 0 seeds from the clock")
	levelFlag    = flag.String("level", "", "Crash site layout file, '#' walls and '.' ground")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "planet-survivor needs an interactive terminal")
		os.Exit(1)
	}
	if *tickFlag <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid -tick %v\n", *tickFlag)
		os.Exit(2)
	}

	log, err := logger.OpenFile(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v (logging disabled)\n", err)
		log = logger.Discard()
	}
	defer log.Close()
	core.SetLogger(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := openStore(ctx, *dbFlag, log)
	defer store.Close()
	settings := storage.NewSettings(store, log)

	if *colorFlag != "" {
		c, err := parseColor(*colorFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -color: %v\n", err)
			os.Exit(2)
		}
		if err := settings.SetPlayerColor(ctx, c); err != nil {
			log.Warnf("failed to save player color: %v", err)
		}
	}

	opts := scenes.GameOptions{Diagonal: *diagonalFlag, Seed: *seedFlag}
	if *levelFlag != "" {
		data, err := os.ReadFile(*levelFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read level: %v\n", err)
			os.Exit(1)
		}
		opts.Level = string(data)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	core.SetScreen(screen)

	player := audio.Open(log, settings.Muted(ctx))
	defer player.Close()

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	manager := engine.NewSceneManager(log)

	deps := &scenes.Deps{
		Ctx:      ctx,
		Manager:  manager,
		Settings: settings,
		Runs:     store,
		Audio:    player,
		Log:      log,
		Clock:    clock,
		Input:    input.NewState(clock, constants.KeyHoldWindow),
		Options:  opts,
		Quit:     cancel,
	}
	if screen.HasMouse() {
		deps.Joystick = input.NewJoystick(constants.JoystickRadius, constants.JoystickForceMin,
			constants.CellWidth, constants.CellHeight)
	}
	scenes.Register(deps)
	manager.Start(scenes.ScenePreloader, nil)

	scheduler := engine.NewClockScheduler(clock, *tickFlag, manager.Update, log)
	core.Go(func() {
		if err := scheduler.Run(ctx); err != nil {
			log.Errorf("scheduler stopped: %v", err)
			cancel()
		}
	})
	defer scheduler.Stop()

	stats := status.NewRegistry()
	defer func() { log.Infof("stats: %s", stats.Summary()) }()

	var hub *spectate.Hub
	if *spectateFlag != "" {
		hub = spectate.NewHub(log)
		core.Go(func() {
			if err := hub.Serve(ctx, *spectateFlag); err != nil {
				log.Errorf("spectator feed stopped: %v", err)
			}
		})
		core.Go(func() {
			spectate.RunPublisher(ctx, hub, constants.SpectatorPublishInterval, func() (spectate.Snapshot, bool) {
				return scenes.Snapshot(manager)
			})
		})
	}

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	cols, rows := screen.Size()
	canvas := render.NewCanvas(cols, rows)

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	log.Infof("started, db=%s tick=%v", *dbFlag, *tickFlag)
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
					cancel()
					continue
				}
				manager.HandleKey(ev)
			case *tcell.EventMouse:
				manager.HandleMouse(ev)
			case *tcell.EventResize:
				cols, rows = ev.Size()
				canvas.Resize(cols, rows)
				screen.Sync()
			}

		case <-frameTicker.C:
			start := time.Now()
			canvas.Clear()
			scenes.Render(manager, canvas)
			canvas.Flush(screen)
			recordFrame(stats, time.Since(start), manager, scheduler, hub)
		}
	}
}

// recordFrame publishes the per-frame runtime counters
func recordFrame(stats *status.Registry, took time.Duration, m *engine.SceneManager, cs *engine.ClockScheduler, hub *spectate.Hub) {
	stats.Ints.Get(status.Frames).Add(1)
	stats.Floats.Get(status.FrameMillis).Set(float64(took.Microseconds()) / 1000)
	stats.Strings.Get(status.Scene).Store(m.CurrentName())
	stats.Ints.Get(status.Ticks).Store(int64(cs.TickCount()))
	stats.Ints.Get(status.DroppedTicks).Store(int64(cs.DroppedTicks()))
	if hub != nil {
		stats.Ints.Get(status.Spectators).Store(int64(hub.ClientCount()))
		stats.Ints.Get(status.SpectateDrops).Store(int64(hub.Dropped()))
	}
}

// persistentStore is the storage the binary runs against
type persistentStore interface {
	storage.Store
	storage.RunLog
	Close() error
}

// openStore opens the SQLite database, falling back to memory so the game still runs
func openStore(ctx context.Context, path string, log *logger.Logger) persistentStore {
	db, err := storage.OpenSQLite(ctx, path)
	if err != nil {
		log.Warnf("settings database unavailable, nothing will be saved: %v", err)
		return storage.NewMemoryStore()
	}
	return db
}

// parseColor accepts a palette name or a hex value
func parseColor(s string) (uint32, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return 0xffffff, nil
	case "red":
		return 0xff0000, nil
	case "blue":
		return 0x0000ff, nil
	case "green":
		return 0x00ff00, nil
	}
	base := 0
	if strings.HasPrefix(s, "#") {
		s, base = s[1:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil || v == 0 || v > 0xffffff {
		return 0, fmt.Errorf("%q is not a color", s)
	}
	return uint32(v), nil
}
