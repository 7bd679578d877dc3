package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Canvas is a cell buffer composed each frame and flushed to a screen
type Canvas struct {
	cells  []Cell
	width  int
	height int

	// Screen-space offset applied on flush, used for camera shake
	shakeX, shakeY int
}

// NewCanvas creates a cleared canvas
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.width, c.height = width, height
	c.Clear()
}

// Size returns the canvas dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear resets every cell and the shake offset
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = emptyCell
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
	c.shakeX, c.shakeY = 0, 0
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at x, y, or an empty cell out of bounds
func (c *Canvas) Get(x, y int) Cell {
	if !c.inBounds(x, y) {
		return emptyCell
	}
	return c.cells[y*c.width+x]
}

// Set replaces a cell
func (c *Canvas) Set(x, y int, r rune, fg, bg tcell.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFg draws a rune keeping the existing background
func (c *Canvas) SetFg(x, y int, r rune, fg tcell.Color) {
	if !c.inBounds(x, y) {
		return
	}
	cell := &c.cells[y*c.width+x]
	cell.Rune = r
	cell.Fg = fg
	cell.Attrs = tcell.AttrNone
}

// SetAttrs sets text attributes on an existing cell
func (c *Canvas) SetAttrs(x, y int, attrs tcell.AttrMask) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x].Attrs = attrs
}

// Fill paints a rectangle
func (c *Canvas) Fill(x, y, w, h int, r rune, fg, bg tcell.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.Set(col, row, r, fg, bg)
		}
	}
}

// Text draws s starting at x, y over the existing background and returns the columns used
func (c *Canvas) Text(x, y int, s string, fg tcell.Color) int {
	n := 0
	for _, r := range s {
		c.SetFg(x+n, y, r, fg)
		n++
	}
	return n
}

// CenterText draws s horizontally centred on row y and returns its start column
func (c *Canvas) CenterText(y int, s string, fg tcell.Color) int {
	x := (c.width - utf8.RuneCountInString(s)) / 2
	if x < 0 {
		x = 0
	}
	c.Text(x, y, s, fg)
	return x
}

// Overlay blends color into every background and foreground by alpha
func (c *Canvas) Overlay(color tcell.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	for i := range c.cells {
		c.cells[i].Bg = Blend(c.cells[i].Bg, color, alpha)
		c.cells[i].Fg = Blend(c.cells[i].Fg, color, alpha/2)
	}
}

// SetShake offsets the whole frame on the next flush
func (c *Canvas) SetShake(dx, dy int) {
	c.shakeX, c.shakeY = dx, dy
}

// Shake returns the pending frame offset
func (c *Canvas) Shake() (int, int) {
	return c.shakeX, c.shakeY
}

// Flush copies the canvas to screen and shows it
func (c *Canvas) Flush(screen tcell.Screen) {
	screen.Clear()
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			screen.SetContent(x+c.shakeX, y+c.shakeY, cell.Rune, nil, cell.Style())
		}
	}
	screen.Show()
}
