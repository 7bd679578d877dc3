package render

import (
	"fmt"

	"github.com/lixenwraith/planet-survivor/engine"
)

// DrawHUD draws the status strip on the top rows
func DrawHUD(c *Canvas, s engine.SimulationState, paused bool) {
	cols, _ := c.Size()
	c.Fill(0, 0, cols, 1, ' ', ColorText, ColorHUDBg)

	x := 1
	x += c.Text(x, 0, fmt.Sprintf("Scrap: %d", s.Score), ColorText) + 3

	energyColor := ColorEnergyOK
	if s.EnergyCritical() {
		energyColor = ColorEnergyLow
	}
	x += c.Text(x, 0, fmt.Sprintf("Energy: %d%%", s.Energy), energyColor) + 3
	x += c.Text(x, 0, fmt.Sprintf("Level: %d", s.Level), ColorText) + 3
	c.Text(x, 0, fmt.Sprintf("Lives: %d", s.Lives), ColorText)

	if paused {
		c.Text(cols-len("PAUSED")-1, 0, "PAUSED", ColorTitle)
	}

	c.Fill(0, 1, cols, 1, '─', ColorDim, ColorHUDBg)
}
