package scenes

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/render"
)

const (
	menuPlay = iota
	menuOptions
	menuInstructions
	menuQuit
)

// Menu is the title screen
type Menu struct {
	d         *Deps
	list      *menuList
	highScore int
}

func NewMenu(d *Deps) *Menu {
	return &Menu{
		d:    d,
		list: newMenuList("PLAY", "OPTIONS / SETTINGS", "HOW TO PLAY", "QUIT"),
	}
}

func (m *Menu) Init(engine.SceneData) {}

func (m *Menu) Create() error {
	m.highScore = m.d.Settings.HighScore(m.d.ctx())
	return nil
}

func (m *Menu) Update(time.Duration) {}

// HighScore returns the record shown on the menu
func (m *Menu) HighScore() int {
	return m.highScore
}

func (m *Menu) activate(i int) {
	switch i {
	case menuPlay:
		m.d.Manager.Start(SceneStory, nil)
	case menuOptions:
		m.d.Manager.Start(SceneOptions, nil)
	case menuInstructions:
		m.d.Manager.Start(SceneInstructions, nil)
	case menuQuit:
		m.d.quit()
	}
}

func (m *Menu) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		m.d.quit()
		return
	}
	if i := m.list.HandleKey(ev); i >= 0 {
		m.activate(i)
	}
}

func (m *Menu) HandleMouse(ev *tcell.EventMouse) {
	if i := m.list.HandleMouse(ev); i >= 0 {
		m.activate(i)
	}
}

func (m *Menu) Render(c *render.Canvas) {
	_, rows := c.Size()
	top := max(1, rows/2-8)

	c.CenterText(top, "PLANET SURVIVOR", render.ColorTitle)
	c.CenterText(top+2, "Resource Management", render.ColorEnergyOK)

	m.list.Render(c, top+5, 2)

	c.CenterText(top+14, "WASD or arrows to move", render.ColorDim)
	c.CenterText(top+16, fmt.Sprintf("Record: %d", m.highScore), render.ColorEnergy)
}
