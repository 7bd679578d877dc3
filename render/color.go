package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	ColorBackground = tcell.NewRGBColor(12, 10, 24)    // Deep space
	ColorGround     = tcell.NewRGBColor(40, 30, 46)    // Planet surface
	ColorGroundDot  = tcell.NewRGBColor(70, 56, 80)    // Surface speckle
	ColorWall       = tcell.NewRGBColor(120, 96, 130)  // Rock
	ColorText       = tcell.NewRGBColor(220, 220, 230) // Default text
	ColorDim        = tcell.NewRGBColor(120, 120, 140) // Secondary text
	ColorTitle      = tcell.NewRGBColor(255, 200, 60)  // Titles and highlights
	ColorSelected   = tcell.NewRGBColor(0, 255, 200)   // Active menu entry
	ColorEnemy      = tcell.NewRGBColor(255, 70, 70)   // Hostile creatures
	ColorScrap      = tcell.NewRGBColor(190, 190, 200) // Scrap metal
	ColorEnergy     = tcell.NewRGBColor(255, 230, 0)   // Energy cells
	ColorEnergyOK   = tcell.NewRGBColor(0, 255, 0)     // Energy above the critical threshold
	ColorEnergyLow  = tcell.NewRGBColor(255, 0, 0)     // Energy at or below the critical threshold
	ColorHUDBg      = tcell.NewRGBColor(0, 0, 0)       // HUD strip
	ColorFlash      = tcell.NewRGBColor(255, 255, 255) // Level up flash
	ColorStar       = tcell.NewRGBColor(200, 200, 255) // Story starfield
	ColorFire       = tcell.NewRGBColor(255, 120, 0)   // Explosion and debris
)

// Hex converts a 0xRRGGBB value to a tcell color
func Hex(rgb uint32) tcell.Color {
	return tcell.NewHexColor(int32(rgb & 0xffffff))
}

// Blend mixes src over dst by alpha in [0, 1]
func Blend(dst, src tcell.Color, alpha float64) tcell.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	dr, dg, db := dst.RGB()
	sr, sg, sb := src.RGB()
	inv := 1 - alpha
	return tcell.NewRGBColor(
		int32(float64(sr)*alpha+float64(dr)*inv),
		int32(float64(sg)*alpha+float64(dg)*inv),
		int32(float64(sb)*alpha+float64(db)*inv),
	)
}
