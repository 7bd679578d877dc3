package engine

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event
	HandleEvent(world *World, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventHandlerFunc adapts a function to EventHandler for a fixed set of types
type EventHandlerFunc struct {
	Types []EventType
	Fn    func(world *World, event GameEvent)
}

// HandleEvent calls Fn
func (f EventHandlerFunc) HandleEvent(world *World, event GameEvent) {
	f.Fn(world, event)
}

// EventTypes returns Types
func (f EventHandlerFunc) EventTypes() []EventType {
	return f.Types
}

// EventRouter dispatches events to registered handlers
//
// Handlers are invoked in registration order, and every handler for an event
// runs before the next event is dispatched
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers
func (r *EventRouter) DispatchAll(world *World) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(world, ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
