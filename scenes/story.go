package scenes

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/audio"
	"github.com/lixenwraith/planet-survivor/components"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/render"
)

// StoryPhase is a stage of the intro cutscene
type StoryPhase int

const (
	StoryFlyIn StoryPhase = iota
	StoryAlert
	StoryExplosion
	StoryLanding
	StoryFinal
)

func (p StoryPhase) String() string {
	switch p {
	case StoryFlyIn:
		return "fly_in"
	case StoryAlert:
		return "alert"
	case StoryExplosion:
		return "explosion"
	case StoryLanding:
		return "landing"
	default:
		return "final"
	}
}

// Positions are fractions of the screen so the cutscene fits any terminal size
type star struct {
	x, y  float64
	phase float64
}

type debris struct {
	tx, ty   float64
	duration time.Duration
}

var shipSprite = render.Sprite{
	"__/\\__  ",
	"=[____]>",
}

// Story is the crash cutscene before the first run
type Story struct {
	d       *Deps
	rng     *rand.Rand
	elapsed time.Duration
	skipped bool
	boomed  bool

	stars  []star
	debris []debris
	list   *menuList
}

func NewStory(d *Deps) *Story {
	seed := d.Options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Story{
		d:    d,
		rng:  rand.New(rand.NewSource(seed)),
		list: newMenuList("[ START MISSION ]"),
	}
}

func (s *Story) Init(engine.SceneData) {}

func (s *Story) Create() error {
	s.stars = make([]star, constants.StoryStarCount)
	for i := range s.stars {
		s.stars[i] = star{x: s.rng.Float64(), y: s.rng.Float64(), phase: s.rng.Float64() * 2 * math.Pi}
	}
	s.debris = make([]debris, constants.StoryDebrisCount)
	for i := range s.debris {
		s.debris[i] = debris{
			tx:       s.rng.Float64(),
			ty:       s.rng.Float64(),
			duration: time.Second + time.Duration(s.rng.Int63n(int64(1500*time.Millisecond))),
		}
	}
	return nil
}

// phase boundaries, measured from the start of the scene
var (
	alertAt     = constants.StoryFlyInDuration
	explosionAt = alertAt + constants.StoryAlertDuration
	landingAt   = explosionAt + constants.StoryExplosionDuration
	finalAt     = landingAt + constants.StoryLandingDuration
)

// Phase returns the current stage
func (s *Story) Phase() StoryPhase {
	switch {
	case s.skipped || s.elapsed >= finalAt:
		return StoryFinal
	case s.elapsed >= landingAt:
		return StoryLanding
	case s.elapsed >= explosionAt:
		return StoryExplosion
	case s.elapsed >= alertAt:
		return StoryAlert
	default:
		return StoryFlyIn
	}
}

func (s *Story) Update(dt time.Duration) {
	if s.Phase() == StoryFinal {
		return
	}
	s.elapsed += dt
	if !s.boomed && s.Phase() == StoryExplosion {
		s.boomed = true
		s.d.audio().Play(audio.SoundGameOver)
	}
}

func (s *Story) start() {
	s.d.Manager.Start(SceneGame, nil)
}

func (s *Story) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		s.d.Manager.Start(SceneMenu, nil)
		return
	}
	if s.Phase() != StoryFinal {
		s.skipped = true
		return
	}
	if s.list.HandleKey(ev) >= 0 {
		s.start()
	}
}

func (s *Story) HandleMouse(ev *tcell.EventMouse) {
	if s.Phase() != StoryFinal {
		if ev.Buttons()&tcell.Button1 != 0 {
			s.skipped = true
			// Swallow the press so the same click does not start the game
			s.list.pressed = true
		}
		return
	}
	if s.list.HandleMouse(ev) >= 0 {
		s.start()
	}
}

// progress returns how far t is through a phase starting at from, in [0, 1]
func progress(t, from, length time.Duration) float64 {
	if length <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, float64(t-from)/float64(length)))
}

func (s *Story) Render(c *render.Canvas) {
	cols, rows := c.Size()
	fw, fh := float64(cols-1), float64(rows-1)
	phase := s.Phase()

	twinkle := s.elapsed.Seconds() * 3
	for _, st := range s.stars {
		r := '.'
		if math.Sin(st.phase+twinkle) > 0.7 {
			r = '*'
		}
		c.SetFg(int(st.x*fw), int(st.y*fh), r, render.ColorStar)
	}

	midX, midY := cols/2, rows/2
	switch phase {
	case StoryFlyIn, StoryAlert:
		// Power1 ease-out from off screen to the middle
		p := progress(s.elapsed, 0, alertAt)
		p = 1 - (1-p)*(1-p)
		x := int(-10 + p*float64(midX+10))
		y := midY
		logColor := render.ColorEnergyOK
		line1, line2 := "Captain's log: day 452", "Routine mission..."
		if phase == StoryAlert {
			// Hull shudder and red alarm
			if int(s.elapsed/(50*time.Millisecond))%2 == 0 {
				y++
			}
			logColor = render.ColorEnemy
			line1, line2 = "WARNING: ASTEROID FIELD DETECTED!", ""
			c.Overlay(render.ColorEnemy, 0.3*(1-progress(s.elapsed, alertAt, explosionAt-alertAt)))
		} else {
			c.SetFg(x-5, y+1, '~', render.ColorFire)
			c.SetFg(x-6, y+1, '-', render.ColorFire)
		}
		render.DrawSprite(c, x, y, shipSprite, render.ColorText, 0)
		c.Text(2, 1, line1, logColor)
		c.Text(2, 2, line2, logColor)

	case StoryExplosion:
		t := s.elapsed - explosionAt
		for _, d := range s.debris {
			p := progress(t, 0, d.duration)
			p = 1 - (1-p)*(1-p)*(1-p) // cubic ease-out
			x := float64(midX) + (d.tx*fw-float64(midX))*p
			y := float64(midY) + (d.ty*fh-float64(midY))*p
			c.SetFg(int(x), int(y), render.GlyphScrap, render.ColorScrap)
		}
		radius := 1 + int(8*progress(t, 0, 800*time.Millisecond))
		if t < 800*time.Millisecond {
			for a := 0; a < 16; a++ {
				ang := float64(a) * math.Pi / 8
				c.SetFg(midX+int(float64(radius)*2*math.Cos(ang)), midY+int(float64(radius)*math.Sin(ang)), '*', render.ColorFire)
			}
		}
		c.Text(2, 1, "CRITICAL ERROR! CARGO EJECTED!", render.ColorEnemy)

	case StoryLanding:
		p := progress(s.elapsed, landingAt, finalAt-landingAt)
		y := int(-3 + bounceOut(p)*float64(midY+5))
		render.DrawSprite(c, midX, y, render.PlayerSprite(components.PlayerIdle, components.FacingRight), render.ColorText, 0)

	case StoryFinal:
		render.DrawSprite(c, midX, midY-6, render.PlayerSprite(components.PlayerIdle, components.FacingRight), render.ColorText, 0)
		top := midY - 2
		c.CenterText(top, "You survived the crash...", render.ColorEnergyOK)
		c.CenterText(top+2, "Your ship was destroyed and the cargo scattered.", render.ColorText)
		c.CenterText(top+3, "The local aliens are trying to steal the energy!", render.ColorText)
		c.CenterText(top+5, "Collect the parts to raise your record and", render.ColorText)
		c.CenterText(top+6, "grab the batteries to recharge!", render.ColorText)
		s.list.Render(c, top+9, 1)
	}
}

// bounceOut is the classic bounce easing, landing at 1 with decaying hops
func bounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
