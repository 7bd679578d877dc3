package render

import (
	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/tilemap"
)

// TileRenderer draws the map under the camera
type TileRenderer struct {
	level  *tilemap.Map
	camera *Camera
}

// NewTileRenderer creates a renderer for level; a nil level draws bare ground
func NewTileRenderer(level *tilemap.Map, camera *Camera) *TileRenderer {
	return &TileRenderer{level: level, camera: camera}
}

func (r *TileRenderer) Render(c *Canvas) {
	cols, rows := c.Size()
	for row := r.camera.OriginRow; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := r.camera.ToWorld(col, row)
			switch {
			case r.level == nil:
				c.Set(col, row, ' ', ColorText, ColorGround)
			case x < 0 || y < 0 || x >= r.level.Width() || y >= r.level.Height():
				c.Set(col, row, ' ', ColorText, ColorBackground)
			case r.level.SolidAt(x, y):
				c.Set(col, row, GlyphWall, ColorWall, ColorBackground)
			default:
				c.Set(col, row, groundRune(x, y, r.level.TileSize()), ColorGroundDot, ColorGround)
			}
		}
	}
}

// groundRune speckles one fixed cell in some tiles so scrolling is visible
func groundRune(x, y, tile float64) rune {
	tx, ty := int(x/tile), int(y/tile)
	inX := int((x - float64(tx)*tile) / 8)
	inY := int((y - float64(ty)*tile) / 16)
	if (tx*7+ty*13)%5 == 0 && inX == 1 && inY == 0 {
		return GlyphGroundDot
	}
	return ' '
}

// EntityRenderer draws items, enemies and the player
type EntityRenderer struct {
	world   *engine.World
	camera  *Camera
	effects *Effects
}

// NewEntityRenderer creates an entity renderer; effects may be nil
func NewEntityRenderer(world *engine.World, camera *Camera, effects *Effects) *EntityRenderer {
	return &EntityRenderer{world: world, camera: camera, effects: effects}
}

func (r *EntityRenderer) Render(c *Canvas) {
	minRow := r.camera.OriginRow

	for _, e := range r.world.Resources.GetAllEntities() {
		res, _ := r.world.Resources.GetComponent(e)
		body, ok := r.world.Bodies.GetComponent(e)
		if !ok || !res.Active {
			continue
		}
		col, row := r.camera.ToScreen(body.X, body.Y)
		if row < minRow {
			continue
		}
		if res.Kind == components.KindEnergyCell {
			c.SetFg(col, row, GlyphEnergyCell, ColorEnergy)
		} else {
			c.SetFg(col, row, GlyphScrap, ColorScrap)
		}
	}

	for _, e := range r.world.Enemies.GetAllEntities() {
		enemy, _ := r.world.Enemies.GetComponent(e)
		body, ok := r.world.Bodies.GetComponent(e)
		if !ok {
			continue
		}
		col, row := r.camera.ToScreen(body.X, body.Y)
		DrawSprite(c, col, row, EnemySprite(enemy.Anim), ColorEnemy, minRow)
	}

	if r.effects != nil && !r.effects.PlayerVisible() {
		return
	}
	for _, e := range r.world.Players.GetAllEntities() {
		player, _ := r.world.Players.GetComponent(e)
		body, ok := r.world.Bodies.GetComponent(e)
		if !ok {
			continue
		}
		col, row := r.camera.ToScreen(body.X, body.Y)
		DrawSprite(c, col, row, PlayerSprite(player.Anim, player.Facing), Hex(player.Tint), minRow)
	}
}
