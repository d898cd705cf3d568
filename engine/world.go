package engine

import (
	"sort"

	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/event"
)

// World contains all entities, their components, and the singleton resources
// Single-threaded by design: one synchronous update per tick, no internal locks
type World struct {
	nextEntityID core.Entity

	Component ComponentStore
	Resource  *Resource

	systems []System
}

// NewWorld creates a world with initialized stores and resources
func NewWorld(seed uint64, practice bool) *World {
	return &World{
		nextEntityID: 1,
		Component:    newComponentStore(),
		Resource:     newResource(seed, practice),
		systems:      make([]System, 0, 16),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Component.Kinetic.Remove(e)
	w.Component.Player.Remove(e)
	w.Component.Shield.Remove(e)
	w.Component.Enemy.Remove(e)
	w.Component.Projectile.Remove(e)
	w.Component.Death.Remove(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	w.Component.Kinetic.Clear()
	w.Component.Player.Clear()
	w.Component.Shield.Clear()
	w.Component.Enemy.Clear()
	w.Component.Projectile.Clear()
	w.Component.Death.Clear()
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// PushEvent enqueues an event for dispatch at the start of the next tick
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resource.Event.Queue.Push(event.GameEvent{Type: t, Payload: payload})
}
