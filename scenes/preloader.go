package scenes

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/render"
)

// Preloader shows a loading bar for a fixed time, then opens the menu
type Preloader struct {
	d       *Deps
	elapsed time.Duration
	done    bool
}

func NewPreloader(d *Deps) *Preloader {
	return &Preloader{d: d}
}

func (p *Preloader) Init(engine.SceneData) {}

func (p *Preloader) Create() error { return nil }

func (p *Preloader) Update(dt time.Duration) {
	if p.done {
		return
	}
	p.elapsed += dt
	if p.elapsed >= constants.PreloadDuration {
		p.done = true
		p.d.Manager.Start(SceneMenu, nil)
	}
}

// Progress returns the loading percentage
func (p *Preloader) Progress() int {
	if p.elapsed >= constants.PreloadDuration {
		return 100
	}
	return int(p.elapsed * 100 / constants.PreloadDuration)
}

func (p *Preloader) HandleKey(*tcell.EventKey) {}

func (p *Preloader) HandleMouse(*tcell.EventMouse) {}

func (p *Preloader) Render(c *render.Canvas) {
	cols, rows := c.Size()
	mid := rows / 2

	c.CenterText(mid-3, "PLANET SURVIVOR", render.ColorTitle)

	width := min(40, cols-4)
	if width > 0 {
		filled := width * p.Progress() / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		c.CenterText(mid, bar, render.ColorSelected)
	}
	c.CenterText(mid+2, fmt.Sprintf("Loading systems... %d%%", p.Progress()), render.ColorText)
}
