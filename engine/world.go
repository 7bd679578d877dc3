package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/planet-survivor/components"
)

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.Mutex
	nextEntityID Entity

	Kinds     *Store[components.Kind]
	Bodies    *Store[components.BodyComponent]
	Players   *Store[components.PlayerComponent]
	Enemies   *Store[components.EnemyComponent]
	Resources *Store[components.ResourceComponent]

	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Kinds:        NewStore[components.Kind](),
		Bodies:       NewStore[components.BodyComponent](),
		Players:      NewStore[components.PlayerComponent](),
		Enemies:      NewStore[components.EnemyComponent](),
		Resources:    NewStore[components.ResourceComponent](),
		systems:      make([]System, 0, 8),
	}
}

// CreateEntity allocates a new entity ID
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes an entity from every store
func (w *World) DestroyEntity(e Entity) {
	w.Kinds.RemoveEntity(e)
	w.Bodies.RemoveEntity(e)
	w.Players.RemoveEntity(e)
	w.Enemies.RemoveEntity(e)
	w.Resources.RemoveEntity(e)
}

// Clear removes all entities, systems stay registered
func (w *World) Clear() {
	w.Kinds.ClearAllComponents()
	w.Bodies.ClearAllComponents()
	w.Players.ClearAllComponents()
	w.Enemies.ClearAllComponents()
	w.Resources.ClearAllComponents()
}

// KindOf returns the kind tag of an entity
func (w *World) KindOf(e Entity) (components.Kind, bool) {
	return w.Kinds.GetComponent(e)
}

// Player returns the player entity, if one exists
func (w *World) Player() (Entity, bool) {
	players := w.Players.GetAllEntities()
	if len(players) == 0 {
		return 0, false
	}
	return players[0], true
}

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	w.mu.Lock()
	defer w.mu.Unlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems once in priority order
func (w *World) Update(dt time.Duration) {
	for _, system := range w.Systems() {
		system.Update(w, dt)
	}
}
