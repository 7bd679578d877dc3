package components

// ResourceComponent is a pooled pickup slot
// Inactive slots stay in the world and are reused before new ones are allocated
type ResourceComponent struct {
	Kind   Kind
	Scale  float64
	Active bool
}
