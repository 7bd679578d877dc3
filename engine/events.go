package engine

import (
	"sync"
)

// EventType identifies a gameplay event raised by the survival loop
type EventType int

const (
	// EventScrapCollected fires after scrap is scored
	EventScrapCollected EventType = iota

	// EventEnergyCollected fires after an energy cell refills energy
	EventEnergyCollected

	// EventLevelUp fires when the score reaches a new multiple of the level step
	EventLevelUp

	// EventEnemySpawned fires when a level-up grows the swarm
	EventEnemySpawned

	// EventLifeLost fires on a life loss that did not end the run
	EventLifeLost

	// EventEnergyDepleted fires when the energy tank empties and is refilled
	EventEnergyDepleted

	// EventGameOver fires exactly once per run, when the latch is set
	EventGameOver
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventScrapCollected:
		return "ScrapCollected"
	case EventEnergyCollected:
		return "EnergyCollected"
	case EventLevelUp:
		return "LevelUp"
	case EventEnemySpawned:
		return "EnemySpawned"
	case EventLifeLost:
		return "LifeLost"
	case EventEnergyDepleted:
		return "EnergyDepleted"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent carries the state values at the moment the event fired
type GameEvent struct {
	Type   EventType
	Score  int
	Level  int
	Energy int
	Lives  int
	Entity Entity // Subject entity when relevant, zero otherwise
}

// EventQueue is a FIFO of pending events
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 16)}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Consume removes and returns all pending events in push order
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, 16)
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
