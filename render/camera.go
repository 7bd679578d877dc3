package render

import (
	"math"

	"github.com/lixenwraith/planet-survivor/constants"
)

// Camera maps world units to screen cells
// X and Y are the world position of the top-left of the view
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64

	// First screen row of the world view, rows above belong to the HUD
	OriginRow int
}

// NewCamera creates a camera whose view starts below the HUD
func NewCamera() *Camera {
	return &Camera{OriginRow: constants.HUDRows}
}

// Resize sets the view from the terminal size in cells
func (c *Camera) Resize(cols, rows int) {
	viewRows := rows - c.OriginRow
	if viewRows < 0 {
		viewRows = 0
	}
	c.ViewW = float64(cols) * constants.CellWidth
	c.ViewH = float64(viewRows) * constants.CellHeight
}

// Follow centres the view on px, py, clamped to the world
// A view larger than the world centres the world instead
func (c *Camera) Follow(px, py, worldW, worldH float64) {
	c.X = followAxis(px, c.ViewW, worldW)
	c.Y = followAxis(py, c.ViewH, worldH)
}

func followAxis(target, view, world float64) float64 {
	if view >= world {
		return (world - view) / 2
	}
	pos := target - view/2
	return math.Max(0, math.Min(pos, world-view))
}

// ToScreen converts a world position to a screen cell
func (c *Camera) ToScreen(x, y float64) (col, row int) {
	col = int(math.Floor((x - c.X) / constants.CellWidth))
	row = int(math.Floor((y-c.Y)/constants.CellHeight)) + c.OriginRow
	return col, row
}

// ToWorld returns the world position at the centre of a screen cell
func (c *Camera) ToWorld(col, row int) (x, y float64) {
	x = c.X + (float64(col)+0.5)*constants.CellWidth
	y = c.Y + (float64(row-c.OriginRow)+0.5)*constants.CellHeight
	return x, y
}
