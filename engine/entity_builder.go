package engine

// EntityBuilder reserves an entity ID and attaches components before Build
//
// Example usage:
//
//	e := world.NewEntity()
//	With(e, world.Kinds, components.KindScrap)
//	With(e, world.Bodies, body)
//	entity := e.Build()
type EntityBuilder struct {
	world  *World
	entity Entity
	built  bool
}

// NewEntity creates a builder with a freshly reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, component)
	return eb
}

// Build finalizes construction and returns the entity ID
func (eb *EntityBuilder) Build() Entity {
	eb.built = true
	return eb.entity
}
