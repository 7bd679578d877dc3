package render

// Priority determines draw order, lower values draw first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityTiles
	PriorityItems
	PriorityActors
	PriorityEffects
	PriorityUI
	PriorityOverlay
)

// Drawable is anything that paints itself onto a canvas
type Drawable interface {
	Render(c *Canvas)
}

// DrawFunc adapts a function to Drawable
type DrawFunc func(c *Canvas)

func (f DrawFunc) Render(c *Canvas) { f(c) }

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type drawableEntry struct {
	drawable Drawable
	priority Priority
	index    int // registration order for stable sort
}

// Compositor draws registered layers in priority order
type Compositor struct {
	entries  []drawableEntry
	regCount int
}

// NewCompositor creates an empty compositor
func NewCompositor() *Compositor {
	return &Compositor{entries: make([]drawableEntry, 0, 8)}
}

// Register adds a layer at the given priority, keeping entries sorted by insertion
func (o *Compositor) Register(d Drawable, priority Priority) {
	entry := drawableEntry{
		drawable: d,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.entries)
	for i, e := range o.entries {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.entries = append(o.entries, drawableEntry{})
	copy(o.entries[pos+1:], o.entries[pos:])
	o.entries[pos] = entry
}

// Len returns the number of registered layers
func (o *Compositor) Len() int {
	return len(o.entries)
}

// Render draws every visible layer
func (o *Compositor) Render(c *Canvas) {
	for _, entry := range o.entries {
		if vt, ok := entry.drawable.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.drawable.Render(c)
	}
}
