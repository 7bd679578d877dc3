package scenes

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/audio"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/input"
	"github.com/lixenwraith/planet-survivor/render"
	"github.com/lixenwraith/planet-survivor/storage"
)

const frame = time.Second / 60

// recordingPlayer remembers every sound requested
type recordingPlayer struct {
	mu     sync.Mutex
	played []audio.SoundType
	muted  bool
}

func (p *recordingPlayer) Play(st audio.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return false
	}
	p.played = append(p.played, st)
	return true
}

func (p *recordingPlayer) SetMuted(m bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = m
}

func (p *recordingPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *recordingPlayer) Close() {}

func (p *recordingPlayer) count(st audio.SoundType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, s := range p.played {
		if s == st {
			n++
		}
	}
	return n
}

type harness struct {
	deps  *Deps
	store *storage.MemoryStore
	sound *recordingPlayer
	clock *engine.MockTimeProvider
	quit  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store: storage.NewMemoryStore(),
		sound: &recordingPlayer{},
		clock: engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	h.deps = &Deps{
		Manager:  engine.NewSceneManager(nil),
		Settings: storage.NewSettings(h.store, nil),
		Runs:     h.store,
		Audio:    h.sound,
		Input:    input.NewState(h.clock, constants.KeyHoldWindow),
		Options:  GameOptions{Seed: 7},
		Quit:     func() { h.quit++ },
	}
	Register(h.deps)
	return h
}

// start enters a scene and returns it once created
func (h *harness) start(t *testing.T, name string, data engine.SceneData) engine.Scene {
	t.Helper()
	h.deps.Manager.Start(name, data)
	if got := h.deps.Manager.CurrentName(); got != name {
		t.Fatalf("Expected scene %s, got %s", name, got)
	}
	return h.current()
}

func (h *harness) current() engine.Scene {
	var scene engine.Scene
	h.deps.Manager.Do(func(_ string, s engine.Scene) { scene = s })
	return scene
}

// step runs whole frames until at least d of game time has passed
func (h *harness) step(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		h.deps.Manager.Update(frame)
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// screenText renders the active scene and returns the canvas rows joined by newlines
func (h *harness) screenText(cols, rows int) string {
	c := render.NewCanvas(cols, rows)
	Render(h.deps.Manager, c)
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sb.WriteRune(c.Get(x, y).Rune)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// isolate parks the aliens and pickups away from the astronaut so a test controls every contact
func isolate(g *Game) {
	w := g.World()
	for i, e := range w.Enemies.GetAllEntities() {
		g.space.Relocate(e, 700, 500-float64(i)*50)
	}
	for i, e := range w.Resources.GetAllEntities() {
		g.space.Relocate(e, 600, 80+float64(i)*30)
	}
}

func engineSeconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
