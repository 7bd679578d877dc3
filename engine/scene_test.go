package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-survivor/logger"
)

type stubScene struct {
	name      string
	data      SceneData
	createErr error
	updates   int
	keys      int
	left      bool
	onUpdate  func()
}

func (s *stubScene) Init(data SceneData) { s.data = data }
func (s *stubScene) Create() error       { return s.createErr }
func (s *stubScene) Update(dt time.Duration) {
	s.updates++
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
func (s *stubScene) HandleKey(ev *tcell.EventKey)     { s.keys++ }
func (s *stubScene) HandleMouse(ev *tcell.EventMouse) {}
func (s *stubScene) Leave()                           { s.left = true }

func TestSceneManagerStartIsAppliedOnUpdate(t *testing.T) {
	m := NewSceneManager(nil)
	menu := &stubScene{name: "menu"}
	game := &stubScene{name: "game"}
	m.Register("menu", func() Scene { return menu })
	m.Register("game", func() Scene { return game })

	m.Start("menu", nil)
	m.Update(time.Millisecond)
	if m.CurrentName() != "menu" || menu.updates != 1 {
		t.Fatalf("Expected menu active and updated once, got %q / %d", m.CurrentName(), menu.updates)
	}

	// Scene requests a transition from inside its own Update
	menu.onUpdate = func() { m.Start("game", SceneData{"score": 70}) }
	m.Update(time.Millisecond)

	if m.CurrentName() != "game" {
		t.Fatalf("Expected game active, got %q", m.CurrentName())
	}
	if !menu.left {
		t.Error("Expected menu to be left")
	}
	if got := game.data.Int("score", -1); got != 70 {
		t.Errorf("Expected score 70 handed over, got %d", got)
	}
}

func TestSceneManagerFallsBackOnCreateError(t *testing.T) {
	var buf bytes.Buffer
	m := NewSceneManager(logger.New(&buf))
	m.SetFallback("menu")

	menu := &stubScene{name: "menu"}
	m.Register("menu", func() Scene { return menu })
	m.Register("game", func() Scene {
		return &stubScene{name: "game", createErr: errors.New("map unavailable")}
	})

	m.Start("game", nil)
	m.Update(time.Millisecond)

	if m.CurrentName() != "menu" {
		t.Errorf("Expected fallback to menu, got %q", m.CurrentName())
	}
	if !strings.Contains(buf.String(), "map unavailable") {
		t.Errorf("Expected failure to be logged, got %q", buf.String())
	}
}

func TestSceneManagerIgnoresUnknownScene(t *testing.T) {
	m := NewSceneManager(nil)
	m.Register("menu", func() Scene { return &stubScene{} })
	m.Start("menu", nil)
	m.Update(0)

	m.Start("nowhere", nil)
	m.Update(0)
	if m.CurrentName() != "menu" {
		t.Errorf("Expected menu to stay active, got %q", m.CurrentName())
	}
}

func TestSceneManagerRoutesKeys(t *testing.T) {
	m := NewSceneManager(nil)
	s := &stubScene{}
	m.Register("menu", func() Scene { return s })
	m.Start("menu", nil)

	m.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if s.keys != 1 {
		t.Errorf("Expected 1 key routed, got %d", s.keys)
	}

	called := false
	m.Do(func(name string, scene Scene) { called = name == "menu" && scene == s })
	if !called {
		t.Error("Expected Do to see the active scene")
	}
}

func TestSceneDataAccessors(t *testing.T) {
	d := SceneData{"score": 40, "difficulty": "hard", "bad": "x"}
	if d.Int("score", 0) != 40 || d.Int("bad", 7) != 7 || d.Int("missing", 3) != 3 {
		t.Error("Unexpected Int results")
	}
	if d.String("difficulty", "") != "hard" || d.String("score", "none") != "none" {
		t.Error("Unexpected String results")
	}
}
