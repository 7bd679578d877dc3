package render

import (
	"testing"

	"github.com/lixenwraith/planet-survivor/asset"
	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/tilemap"
)

func TestTileRendererDrawsWalls(t *testing.T) {
	level, err := tilemap.Parse(asset.DefaultLevel, constants.TileSize)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cam := NewCamera()
	cam.Resize(40, 12)
	cam.Follow(0, 0, level.Width(), level.Height())

	c := NewCanvas(40, 12)
	NewTileRenderer(level, cam).Render(c)

	// Top-left of the view is the border wall
	if c.Get(0, cam.OriginRow).Rune != GlyphWall {
		t.Errorf("Expected wall glyph at view origin, got %q", c.Get(0, cam.OriginRow).Rune)
	}
	// Tile (1,1) is ground: columns 4-7, rows 2-3 of the view
	if got := c.Get(5, cam.OriginRow+2); got.Rune == GlyphWall || got.Bg != ColorGround {
		t.Errorf("Expected ground, got %+v", got)
	}
	// HUD rows are untouched
	if c.Get(0, 0).Rune != ' ' {
		t.Error("Expected HUD rows left for the HUD")
	}
}

func TestEntityRendererHidesBlinkingPlayer(t *testing.T) {
	w := engine.NewWorld()
	p := w.NewEntity()
	engine.With(p, w.Kinds, components.KindPlayer)
	engine.With(p, w.Bodies, components.BodyComponent{X: 100, Y: 100, W: 40, H: 40, Enabled: true})
	engine.With(p, w.Players, components.PlayerComponent{Tint: 0xff0000})
	p.Build()

	cam := NewCamera()
	cam.Resize(40, 20)
	cam.Follow(100, 100, 800, 600)
	col, row := cam.ToScreen(100, 100)

	fx := NewEffects()
	c := NewCanvas(40, 20)
	NewEntityRenderer(w, cam, fx).Render(c)
	if got := c.Get(col, row); got.Rune != '|' || got.Fg != Hex(0xff0000) {
		t.Errorf("Expected tinted player body at %d,%d, got %+v", col, row, got)
	}

	fx.Blink(constants.BlinkPhaseDuration, constants.BlinkRepeats)
	fx.Update(constants.BlinkPhaseDuration * 3 / 4)
	c.Clear()
	NewEntityRenderer(w, cam, fx).Render(c)
	if c.Get(col, row).Rune != ' ' {
		t.Error("Expected player hidden during blink")
	}
}

func TestEntityRendererSkipsInactiveItems(t *testing.T) {
	w := engine.NewWorld()
	add := func(x float64, active bool, kind components.Kind) {
		eb := w.NewEntity()
		engine.With(eb, w.Kinds, kind)
		engine.With(eb, w.Bodies, components.BodyComponent{X: x, Y: 100, W: 24, H: 24, Enabled: active})
		engine.With(eb, w.Resources, components.ResourceComponent{Kind: kind, Active: active})
		eb.Build()
	}
	add(100, true, components.KindScrap)
	add(200, false, components.KindScrap)
	add(300, true, components.KindEnergyCell)

	cam := NewCamera()
	cam.Resize(60, 20)
	cam.Follow(200, 100, 800, 600)
	c := NewCanvas(60, 20)
	NewEntityRenderer(w, cam, nil).Render(c)

	count := map[rune]int{}
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			count[c.Get(x, y).Rune]++
		}
	}
	if count[GlyphScrap] != 1 || count[GlyphEnergyCell] != 1 {
		t.Errorf("Expected one scrap and one cell, got %d and %d", count[GlyphScrap], count[GlyphEnergyCell])
	}
}
