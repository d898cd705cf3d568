package engine

import (
	"github.com/aposine/monsoon/event"
)

// EventRouter dispatches queued events to registered systems
//
// Architecture:
//   - Single-threaded dispatch, no concurrency with world mutation
//   - Multiple systems can register for the same event type
//   - Systems are invoked in registration order
//   - All events are consumed and dispatched before systems Update
type EventRouter struct {
	handlers map[event.EventType][]System
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]System),
		queue:    queue,
	}
}

// Register adds a system for its declared event types
func (r *EventRouter) Register(s System) {
	for _, t := range s.EventTypes() {
		r.handlers[t] = append(r.handlers[t], s)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// All handlers for an event are called before moving to the next event
// Must be called once per tick, before systems Update
func (r *EventRouter) DispatchAll() {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}
