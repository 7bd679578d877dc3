package components

// BodyComponent is a kinematic axis-aligned box
// X and Y are the centre of the box in world units
type BodyComponent struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	// Enabled bodies move and take part in overlap checks
	Enabled bool
}

// Bounds returns the min and max corners of the box
func (b BodyComponent) Bounds() (minX, minY, maxX, maxY float64) {
	hw, hh := b.W/2, b.H/2
	return b.X - hw, b.Y - hh, b.X + hw, b.Y + hh
}

// Overlaps reports whether two boxes intersect with positive area
func (b BodyComponent) Overlaps(o BodyComponent) bool {
	aMinX, aMinY, aMaxX, aMaxY := b.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := o.Bounds()
	return aMinX < bMaxX && bMinX < aMaxX && aMinY < bMaxY && bMinY < aMaxY
}
