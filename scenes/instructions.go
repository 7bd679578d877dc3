package scenes

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/render"
)

var instructionSections = []struct {
	title string
	lines []string
}{
	{"MISSION", []string{
		"Your ship crashed.",
		"Collect as much SCRAP as you can to score points.",
		"Don't let your ENERGY reach zero!",
	}},
	{"ITEMS", []string{
		"%  Scrap        = +10 points",
		"+  Energy cell  = +20 energy",
	}},
	{"CONTROLS", []string{
		"Keyboard: W, A, S, D or the arrow keys to move. P pauses.",
		"Mouse: drag the virtual joystick in the corner.",
	}},
	{"DANGERS", []string{
		"Run from the aliens! They take your lives.",
		"Energy drains over time, be quick!",
	}},
}

// Instructions explains the rules
type Instructions struct {
	d    *Deps
	list *menuList
}

func NewInstructions(d *Deps) *Instructions {
	return &Instructions{d: d, list: newMenuList("[ BACK TO MENU ]")}
}

func (s *Instructions) Init(engine.SceneData) {}

func (s *Instructions) Create() error { return nil }

func (s *Instructions) Update(time.Duration) {}

func (s *Instructions) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || s.list.HandleKey(ev) >= 0 {
		s.d.Manager.Start(SceneMenu, nil)
	}
}

func (s *Instructions) HandleMouse(ev *tcell.EventMouse) {
	if s.list.HandleMouse(ev) >= 0 {
		s.d.Manager.Start(SceneMenu, nil)
	}
}

func (s *Instructions) Render(c *render.Canvas) {
	y := 1
	c.CenterText(y, "HOW TO PLAY", render.ColorTitle)
	y += 2
	for _, sec := range instructionSections {
		fg := render.ColorEnergyOK
		if sec.title == "DANGERS" {
			fg = render.ColorEnemy
		}
		c.CenterText(y, sec.title, fg)
		y++
		for _, line := range sec.lines {
			c.CenterText(y, line, render.ColorText)
			y++
		}
		y++
	}
	s.list.Render(c, y, 1)
}
