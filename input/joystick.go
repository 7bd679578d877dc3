package input

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Joystick is a mouse-driven virtual stick with eight directions
// Drag distance is measured in world units using the terminal cell size
type Joystick struct {
	mu sync.Mutex

	baseX, baseY int // Centre, in screen cells
	cellW, cellH float64
	radius       float64
	forceMin     float64
	active       bool
	offX, offY   float64
}

// NewJoystick creates a stick; radius and forceMin are in world units
func NewJoystick(radius, forceMin, cellW, cellH float64) *Joystick {
	return &Joystick{
		radius:   radius,
		forceMin: forceMin,
		cellW:    cellW,
		cellH:    cellH,
	}
}

// SetBase moves the stick centre, in screen cells
func (j *Joystick) SetBase(x, y int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.baseX, j.baseY = x, y
}

// Base returns the stick centre in screen cells
func (j *Joystick) Base() (int, int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.baseX, j.baseY
}

// Radius returns the stick radius in screen cells
func (j *Joystick) Radius() (cols, rows int) {
	return int(math.Round(j.radius / j.cellW)), int(math.Round(j.radius / j.cellH))
}

// HandleMouse updates the stick from a mouse event
// A press inside the radius grabs the stick, releasing the button lets go
func (j *Joystick) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	j.mu.Lock()
	defer j.mu.Unlock()

	if !pressed {
		wasActive := j.active
		j.active = false
		j.offX, j.offY = 0, 0
		return wasActive
	}

	dx := float64(x-j.baseX) * j.cellW
	dy := float64(y-j.baseY) * j.cellH
	if !j.active {
		if math.Hypot(dx, dy) > j.radius {
			return false
		}
		j.active = true
	}

	// Thumb stays on the rim when dragged past it
	if dist := math.Hypot(dx, dy); dist > j.radius {
		dx, dy = dx/dist*j.radius, dy/dist*j.radius
	}
	j.offX, j.offY = dx, dy
	return true
}

// Active reports whether the stick is grabbed
func (j *Joystick) Active() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.active
}

// Force returns the thumb distance from the centre in world units
func (j *Joystick) Force() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return math.Hypot(j.offX, j.offY)
}

// Thumb returns the thumb position in screen cells
func (j *Joystick) Thumb() (int, int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.baseX + int(math.Round(j.offX/j.cellW)), j.baseY + int(math.Round(j.offY/j.cellH))
}

// Intent returns the 8-direction reading of the stick
// Below the force minimum the stick reads neutral
func (j *Joystick) Intent() Intent {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.active || math.Hypot(j.offX, j.offY) < j.forceMin {
		return Intent{}
	}
	return directionFromAngle(math.Atan2(j.offY, j.offX))
}

// directionFromAngle maps an angle in radians (screen Y down) to one of 8 sectors of 45 degrees
func directionFromAngle(rad float64) Intent {
	deg := rad * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	sector := int(math.Floor((deg+22.5)/45)) % 8

	switch sector {
	case 0:
		return Intent{Right: true}
	case 1:
		return Intent{Right: true, Down: true}
	case 2:
		return Intent{Down: true}
	case 3:
		return Intent{Left: true, Down: true}
	case 4:
		return Intent{Left: true}
	case 5:
		return Intent{Left: true, Up: true}
	case 6:
		return Intent{Up: true}
	default:
		return Intent{Right: true, Up: true}
	}
}
