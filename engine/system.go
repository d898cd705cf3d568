package engine

import (
	"github.com/aposine/monsoon/event"
)

// System is one stage of the per-tick update
// Systems run in Priority order, lowest first; HandleEvent is invoked by the
// router for declared EventTypes before any Update runs in a tick
type System interface {
	// Name identifies the system in telemetry
	Name() string

	// Priority orders execution within a tick, lower runs first
	Priority() int

	// EventTypes returns the event types this system consumes
	EventTypes() []event.EventType

	// HandleEvent processes a single routed event
	HandleEvent(ev event.GameEvent)

	// Update advances the system by the frame's delta time
	Update()
}
