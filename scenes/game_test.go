package scenes

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/audio"
	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
)

func startGame(t *testing.T, h *harness) *Game {
	t.Helper()
	g := h.start(t, SceneGame, nil).(*Game)
	isolate(g)
	return g
}

func TestGameCreatePopulatesCrashSite(t *testing.T) {
	h := newHarness(t)
	g := h.start(t, SceneGame, nil).(*Game)
	w := g.World()

	if _, ok := w.Player(); !ok {
		t.Fatal("Expected a player entity")
	}
	if n := w.Enemies.CountEntities(); n != constants.InitialEnemyCount {
		t.Errorf("Expected %d enemies, got %d", constants.InitialEnemyCount, n)
	}
	if n := g.spawner.ActiveCount(components.KindScrap); n != constants.ScrapFloor {
		t.Errorf("Expected %d scrap, got %d", constants.ScrapFloor, n)
	}
	if n := g.spawner.ActiveCount(components.KindEnergyCell); n != constants.EnergyCellFloor {
		t.Errorf("Expected %d energy cells, got %d", constants.EnergyCellFloor, n)
	}

	body, _ := w.Bodies.GetComponent(g.Player())
	if body.X != constants.PlayerStartX || body.Y != constants.PlayerStartY {
		t.Errorf("Expected player at start, got %.0f,%.0f", body.X, body.Y)
	}

	s := g.State()
	if s.Score != 0 || s.Level != constants.StartLevel || s.Energy != constants.MaxEnergy || s.Lives != constants.StartLives {
		t.Errorf("Expected fresh run state, got %+v", s)
	}
}

func TestGameUsesStoredSettings(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.deps.Settings.SetDifficulty(ctx, engine.DifficultyHard)
	h.deps.Settings.SetPlayerColor(ctx, 0x00ff00)

	g := h.start(t, SceneGame, nil).(*Game)
	if g.State().Difficulty != engine.DifficultyHard {
		t.Errorf("Expected hard run, got %s", g.State().Difficulty)
	}
	p, ok := g.World().Players.GetComponent(g.Player())
	if !ok || p.Tint != 0x00ff00 {
		t.Errorf("Expected green tint, got %#x", p.Tint)
	}
}

func TestGameEnergyDrainsEachSecond(t *testing.T) {
	h := newHarness(t)
	g := startGame(t, h)

	h.step(constants.EnergyTickInterval)
	if e := g.State().Energy; e != constants.MaxEnergy-constants.EnergyDecayPerTick {
		t.Errorf("Expected energy %d after one tick, got %d", constants.MaxEnergy-constants.EnergyDecayPerTick, e)
	}
	if l := g.State().Lives; l != constants.StartLives {
		t.Errorf("Expected no life lost, got %d lives", l)
	}
}

func TestGameScrapPickup(t *testing.T) {
	h := newHarness(t)
	g := startGame(t, h)

	scrap := engine.Entity(0)
	for _, e := range g.World().Resources.GetAllEntities() {
		if r, _ := g.World().Resources.GetComponent(e); r.Kind == components.KindScrap {
			scrap = e
			break
		}
	}
	g.space.Relocate(scrap, constants.PlayerStartX, constants.PlayerStartY)

	h.step(frame)
	if s := g.State().Score; s != constants.ScrapValue {
		t.Errorf("Expected score %d, got %d", constants.ScrapValue, s)
	}
	if h.sound.count(audio.SoundPickup) != 1 {
		t.Errorf("Expected one pickup sound, got %d", h.sound.count(audio.SoundPickup))
	}
	if n := g.spawner.ActiveCount(components.KindScrap); n != constants.ScrapFloor {
		t.Errorf("Expected scrap kept at floor, got %d", n)
	}
}

func TestGameLevelUpAddsEnemy(t *testing.T) {
	h := newHarness(t)
	g := startGame(t, h)

	for i := 0; i < constants.LevelScoreStep/constants.ScrapValue; i++ {
		g.Progression().OnCollectScrap()
	}
	h.step(frame)

	if l := g.State().Level; l != 2 {
		t.Errorf("Expected level 2, got %d", l)
	}
	if n := g.World().Enemies.CountEntities(); n != constants.InitialEnemyCount+1 {
		t.Errorf("Expected an extra enemy on level 2, got %d", n)
	}
	if h.sound.count(audio.SoundLevelUp) != 1 {
		t.Errorf("Expected level up sound once, got %d", h.sound.count(audio.SoundLevelUp))
	}
	if !g.effects.Active() {
		t.Error("Expected level up flash")
	}
}

func TestGameOverHandsScoreToGameOverScene(t *testing.T) {
	h := newHarness(t)
	g := startGame(t, h)

	for i := 0; i < 3; i++ {
		g.Progression().OnCollectScrap()
	}
	for i := 0; i < constants.StartLives; i++ {
		g.Progression().LoseLife()
	}
	h.step(constants.LifeLostShakeDuration + 2*frame)

	if got := h.deps.Manager.CurrentName(); got != SceneGameOver {
		t.Fatalf("Expected game over scene, got %s", got)
	}
	over := h.current().(*GameOver)
	if !over.NewRecord() || over.Best() != 30 {
		t.Errorf("Expected new record 30, got %v %d", over.NewRecord(), over.Best())
	}
	if hs := h.deps.Settings.HighScore(context.Background()); hs != 30 {
		t.Errorf("Expected stored high score 30, got %d", hs)
	}
	runs, _ := h.store.RecentRuns(context.Background(), 0)
	if len(runs) != 1 {
		t.Errorf("Expected one recorded run, got %d", len(runs))
	}
	if h.sound.count(audio.SoundGameOver) != 1 {
		t.Errorf("Expected game over sound once, got %d", h.sound.count(audio.SoundGameOver))
	}
}

func TestFinalLifeShakesBeforeGameOver(t *testing.T) {
	h := newHarness(t)
	g := startGame(t, h)

	for i := 0; i < constants.StartLives; i++ {
		g.Progression().LoseLife()
	}
	h.step(frame)

	if got := h.deps.Manager.CurrentName(); got != SceneGame {
		t.Fatalf("Expected game scene during the final shake, got %s", got)
	}
	if !g.effects.Shaking() {
		t.Fatal("Expected shake on the final life")
	}
	if dx, dy := g.effects.ShakeOffset(80, 30); dx == 0 && dy == 0 {
		t.Error("Expected nonzero shake offset")
	}
	if !g.State().GameOver {
		t.Error("Expected game over latch set")
	}

	h.step(constants.LifeLostShakeDuration + frame)
	if got := h.deps.Manager.CurrentName(); got != SceneGameOver {
		t.Errorf("Expected game over scene after the shake, got %s", got)
	}
}

func TestGameBrokenLevelFallsBackToMenu(t *testing.T) {
	h := newHarness(t)
	h.deps.Options.Level = "....\n...."
	h.deps.Manager.Start(SceneGame, nil)

	if got := h.deps.Manager.CurrentName(); got != SceneMenu {
		t.Errorf("Expected menu after failed load, got %s", got)
	}
}

func TestGamePause(t *testing.T) {
	h := newHarness(t)
	h.deps.Clock = engine.NewPausableClock(h.clock)
	g := startGame(t, h)

	h.deps.Manager.HandleKey(runeKey('p'))
	if !g.Paused() || !h.deps.Clock.IsPaused() {
		t.Fatal("Expected game and clock paused")
	}
	if !strings.Contains(h.screenText(100, 40), "PAUSED") {
		t.Error("Expected pause banner")
	}

	h.step(2 * time.Second)
	if e := g.State().Energy; e != constants.MaxEnergy {
		t.Errorf("Expected no drain while paused, got %d", e)
	}
	snap, _ := Snapshot(h.deps.Manager)
	if !snap.Paused {
		t.Error("Expected paused snapshot")
	}

	h.deps.Manager.HandleKey(runeKey('P'))
	if g.Paused() || h.deps.Clock.IsPaused() {
		t.Error("Expected resumed")
	}
}

func TestGameLeaveResumesClock(t *testing.T) {
	h := newHarness(t)
	h.deps.Clock = engine.NewPausableClock(h.clock)
	startGame(t, h)

	h.deps.Manager.HandleKey(runeKey('p'))
	h.deps.Manager.HandleKey(key(tcell.KeyEscape))

	if got := h.deps.Manager.CurrentName(); got != SceneMenu {
		t.Fatalf("Expected menu, got %s", got)
	}
	if h.deps.Clock.IsPaused() {
		t.Error("Expected clock resumed when leaving a paused run")
	}
}

func TestGamePlayerMovesWithKeys(t *testing.T) {
	h := newHarness(t)
	g := startGame(t, h)

	h.deps.Manager.HandleKey(runeKey('d'))
	h.step(500 * time.Millisecond)

	body, _ := g.World().Bodies.GetComponent(g.Player())
	if body.X <= constants.PlayerStartX {
		t.Errorf("Expected player to move right, x=%.1f", body.X)
	}
	if body.Y != constants.PlayerStartY {
		t.Errorf("Expected no vertical drift, y=%.1f", body.Y)
	}
	p, _ := g.World().Players.GetComponent(g.Player())
	if p.Facing != components.FacingRight {
		t.Errorf("Expected facing right, got %v", p.Facing)
	}
}

func TestGameSnapshotAndRender(t *testing.T) {
	h := newHarness(t)
	g := startGame(t, h)
	g.Progression().OnCollectScrap()

	snap, ok := Snapshot(h.deps.Manager)
	if !ok {
		t.Fatal("Expected snapshot")
	}
	if snap.Scene != SceneGame || snap.Score != 10 || snap.Lives != constants.StartLives ||
		snap.Enemies != constants.InitialEnemyCount || snap.Difficulty != "normal" {
		t.Errorf("Unexpected snapshot %+v", snap)
	}

	text := h.screenText(100, 40)
	for _, want := range []string{"Scrap: 10", "Energy: 100%", "Level: 1", "Lives: 3"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected HUD to show %q", want)
		}
	}
}
