package input

// Direction is one of the four movement directions
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown

	directionCount
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Opposite returns the direction facing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Intent is the merged directional input for one frame
// Each flag is true when any bound source reports the direction pressed
type Intent struct {
	Left, Right, Up, Down bool
}

// Or merges two sources
func (i Intent) Or(o Intent) Intent {
	return Intent{
		Left:  i.Left || o.Left,
		Right: i.Right || o.Right,
		Up:    i.Up || o.Up,
		Down:  i.Down || o.Down,
	}
}

// Any reports whether any direction is pressed
func (i Intent) Any() bool {
	return i.Left || i.Right || i.Up || i.Down
}

// With returns a copy with direction d pressed
func (i Intent) With(d Direction) Intent {
	switch d {
	case DirLeft:
		i.Left = true
	case DirRight:
		i.Right = true
	case DirUp:
		i.Up = true
	case DirDown:
		i.Down = true
	}
	return i
}
