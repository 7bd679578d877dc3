package render

import (
	"testing"

	"github.com/lixenwraith/planet-survivor/input"
)

func TestJoystickRendererIdle(t *testing.T) {
	stick := input.NewJoystick(50, 16, 8, 16)
	stick.SetBase(10, 10)

	c := NewCanvas(40, 20)
	r := NewJoystickRenderer(stick)
	if !r.IsVisible() {
		t.Fatal("Expected stick renderer visible")
	}
	r.Render(c)

	if got := c.Get(10, 10); got.Rune != 'O' || got.Fg != ColorDim {
		t.Errorf("Expected dim thumb at base, got %q", got.Rune)
	}
	rc, _ := stick.Radius()
	if got := c.Get(10+rc, 10).Rune; got != '·' {
		t.Errorf("Expected ring at the radius, got %q", got)
	}
}

func TestJoystickRendererNilStickHidden(t *testing.T) {
	if NewJoystickRenderer(nil).IsVisible() {
		t.Error("Expected nil stick hidden")
	}
}
