package render

import (
	"math"

	"github.com/lixenwraith/planet-survivor/input"
)

// JoystickRenderer draws the virtual stick ring and thumb
type JoystickRenderer struct {
	stick *input.Joystick
}

// NewJoystickRenderer creates a renderer for stick
func NewJoystickRenderer(stick *input.Joystick) *JoystickRenderer {
	return &JoystickRenderer{stick: stick}
}

func (r *JoystickRenderer) IsVisible() bool {
	return r.stick != nil
}

func (r *JoystickRenderer) Render(c *Canvas) {
	bx, by := r.stick.Base()
	rc, rr := r.stick.Radius()

	for i := 0; i < 24; i++ {
		a := float64(i) * math.Pi / 12
		x := bx + int(math.Round(float64(rc)*math.Cos(a)))
		y := by + int(math.Round(float64(rr)*math.Sin(a)))
		c.SetFg(x, y, '·', ColorDim)
	}

	thumb := ColorDim
	if r.stick.Active() {
		thumb = ColorSelected
	}
	tx, ty := r.stick.Thumb()
	c.SetFg(tx, ty, 'O', thumb)
}
