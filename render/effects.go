package render

import (
	"math"
	"time"
)

// Effects tracks the timed feedback effects of the game scene
type Effects struct {
	flashLeft, flashTotal time.Duration

	shakeLeft      time.Duration
	shakeIntensity float64

	blinkElapsed, blinkTotal, blinkPhase time.Duration

	frame uint64
}

// NewEffects creates an idle effect set
func NewEffects() *Effects {
	return &Effects{}
}

// Flash starts a full-screen white flash that fades out over d
func (e *Effects) Flash(d time.Duration) {
	e.flashLeft, e.flashTotal = d, d
}

// Shake starts a camera shake; intensity is a fraction of the view size
func (e *Effects) Shake(d time.Duration, intensity float64) {
	e.shakeLeft = d
	e.shakeIntensity = intensity
}

// Blink starts a yoyo fade of the player, one phase out and one phase back, played repeats+1 times
func (e *Effects) Blink(phase time.Duration, repeats int) {
	if phase <= 0 {
		return
	}
	e.blinkPhase = phase
	e.blinkElapsed = 0
	e.blinkTotal = 2 * phase * time.Duration(repeats+1)
}

// Update advances every running effect by dt
func (e *Effects) Update(dt time.Duration) {
	e.frame++
	if e.flashLeft > 0 {
		e.flashLeft = max(0, e.flashLeft-dt)
	}
	if e.shakeLeft > 0 {
		e.shakeLeft = max(0, e.shakeLeft-dt)
	}
	if e.blinkElapsed < e.blinkTotal {
		e.blinkElapsed = min(e.blinkTotal, e.blinkElapsed+dt)
	}
}

// Active reports whether any effect is running
func (e *Effects) Active() bool {
	return e.flashLeft > 0 || e.shakeLeft > 0 || e.blinkElapsed < e.blinkTotal
}

// Shaking reports whether the camera shake is still running
func (e *Effects) Shaking() bool {
	return e.shakeLeft > 0
}

// FlashAlpha returns the current flash strength in [0, 1]
func (e *Effects) FlashAlpha() float64 {
	if e.flashLeft <= 0 || e.flashTotal <= 0 {
		return 0
	}
	return float64(e.flashLeft) / float64(e.flashTotal)
}

// ShakeOffset returns the frame offset in cells for a view of cols x rows
// The sign alternates every update so the view jitters around its rest position
func (e *Effects) ShakeOffset(cols, rows int) (dx, dy int) {
	if e.shakeLeft <= 0 {
		return 0, 0
	}
	ax := int(math.Ceil(e.shakeIntensity * float64(cols)))
	ay := int(math.Ceil(e.shakeIntensity * float64(rows)))
	if e.frame%2 == 1 {
		ax, ay = -ax, -ay
	}
	return ax, -ay
}

// BlinkAlpha returns the player opacity of the blink in [0, 1]
func (e *Effects) BlinkAlpha() float64 {
	if e.blinkElapsed >= e.blinkTotal {
		return 1
	}
	t := e.blinkElapsed % (2 * e.blinkPhase)
	if t < e.blinkPhase {
		return 1 - float64(t)/float64(e.blinkPhase)
	}
	return float64(t-e.blinkPhase) / float64(e.blinkPhase)
}

// PlayerVisible reports whether the blinking player is drawn this frame
func (e *Effects) PlayerVisible() bool {
	return e.BlinkAlpha() >= 0.5
}

// Apply draws the flash and sets the shake offset on c
func (e *Effects) Apply(c *Canvas) {
	c.Overlay(ColorFlash, e.FlashAlpha())
	cols, rows := c.Size()
	c.SetShake(e.ShakeOffset(cols, rows))
}
