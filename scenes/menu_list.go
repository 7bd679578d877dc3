package scenes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/render"
)

// menuList is a vertical list of selectable entries driven by keys and clicks
type menuList struct {
	items    []string
	selected int
	rows     []int // screen row of each item from the last render

	pressed bool // mouse button state, clicks fire on press
}

func newMenuList(items ...string) *menuList {
	return &menuList{items: items}
}

// SetItem replaces the label of entry i
func (l *menuList) SetItem(i int, label string) {
	if i >= 0 && i < len(l.items) {
		l.items[i] = label
	}
}

// Selected returns the highlighted entry
func (l *menuList) Selected() int {
	return l.selected
}

func (l *menuList) move(delta int) {
	n := len(l.items)
	if n == 0 {
		return
	}
	l.selected = ((l.selected+delta)%n + n) % n
}

// HandleKey moves the highlight and returns the activated entry, or -1
func (l *menuList) HandleKey(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyUp:
		l.move(-1)
	case tcell.KeyDown, tcell.KeyTab:
		l.move(1)
	case tcell.KeyEnter:
		return l.selected
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			l.move(-1)
		case 's', 'S', 'j':
			l.move(1)
		case ' ':
			return l.selected
		}
	}
	return -1
}

// HandleMouse returns the entry clicked on, or -1
func (l *menuList) HandleMouse(ev *tcell.EventMouse) int {
	down := ev.Buttons()&tcell.Button1 != 0
	wasDown := l.pressed
	l.pressed = down
	if !down || wasDown {
		return -1
	}
	_, y := ev.Position()
	for i, row := range l.rows {
		if row == y {
			l.selected = i
			return i
		}
	}
	return -1
}

// Render draws the entries centred from row top, spacing rows apart
func (l *menuList) Render(c *render.Canvas, top, spacing int) {
	l.rows = l.rows[:0]
	for i, label := range l.items {
		y := top + i*spacing
		l.rows = append(l.rows, y)
		fg := render.ColorDim
		text := "  " + label + "  "
		if i == l.selected {
			fg = render.ColorSelected
			text = "> " + label + " <"
		}
		c.CenterText(y, text, fg)
	}
}
