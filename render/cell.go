package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal character with its colors
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs tcell.AttrMask
}

// Style converts the cell colors to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Attributes(c.Attrs)
}

var emptyCell = Cell{Rune: ' ', Fg: ColorText, Bg: ColorBackground}
