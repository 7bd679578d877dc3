package scenes

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/render"
	"github.com/lixenwraith/planet-survivor/storage"
)

const (
	optionColor = iota
	optionDifficulty
	optionSound
	optionBack
)

// Options edits the persisted settings, every change is stored immediately
type Options struct {
	d          *Deps
	list       *menuList
	color      uint32
	difficulty engine.Difficulty
	muted      bool
}

func NewOptions(d *Deps) *Options {
	return &Options{
		d:    d,
		list: newMenuList("", "", "", "BACK TO MENU"),
	}
}

func (o *Options) Init(engine.SceneData) {}

func (o *Options) Create() error {
	ctx := o.d.ctx()
	o.color = o.d.Settings.PlayerColor(ctx)
	o.difficulty = o.d.Settings.Difficulty(ctx)
	o.muted = o.d.Settings.Muted(ctx)
	o.refresh()
	return nil
}

func (o *Options) refresh() {
	o.list.SetItem(optionColor, "Astronaut color: "+storage.PlayerColorName(o.color))
	o.list.SetItem(optionDifficulty, "Difficulty: "+o.difficulty.Label())
	sound := "ON"
	if o.muted {
		sound = "OFF"
	}
	o.list.SetItem(optionSound, "Sound: "+sound)
}

func (o *Options) Update(time.Duration) {}

func (o *Options) activate(i int) {
	ctx := o.d.ctx()
	log := o.d.logger()

	switch i {
	case optionColor:
		o.color = storage.NextPlayerColor(o.color)
		if err := o.d.Settings.SetPlayerColor(ctx, o.color); err != nil {
			log.Warnf("failed to save player color: %v", err)
		}
	case optionDifficulty:
		o.difficulty = o.difficulty.Next()
		if err := o.d.Settings.SetDifficulty(ctx, o.difficulty); err != nil {
			log.Warnf("failed to save difficulty: %v", err)
		}
	case optionSound:
		o.muted = !o.muted
		o.d.audio().SetMuted(o.muted)
		if err := o.d.Settings.SetMuted(ctx, o.muted); err != nil {
			log.Warnf("failed to save sound setting: %v", err)
		}
	case optionBack:
		o.d.Manager.Start(SceneMenu, nil)
		return
	}
	o.refresh()
}

func (o *Options) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		o.d.Manager.Start(SceneMenu, nil)
		return
	}
	if i := o.list.HandleKey(ev); i >= 0 {
		o.activate(i)
	}
}

func (o *Options) HandleMouse(ev *tcell.EventMouse) {
	if i := o.list.HandleMouse(ev); i >= 0 {
		o.activate(i)
	}
}

func (o *Options) Render(c *render.Canvas) {
	_, rows := c.Size()
	top := max(1, rows/2-7)

	c.CenterText(top, "OPTIONS", render.ColorTitle)
	o.list.Render(c, top+3, 2)

	// Swatch of the current astronaut color
	c.CenterText(top+12, "@", render.Hex(o.color))
}
