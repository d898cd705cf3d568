package system

import (
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
)

// CullSystem destroys death-marked entities at the end of every tick
// Running last means a marked entity stays queryable for the whole tick it
// died on
type CullSystem struct {
	world *engine.World
}

func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return constant.PriorityCull }

func (s *CullSystem) EventTypes() []event.EventType { return nil }

func (s *CullSystem) HandleEvent(event.GameEvent) {}

func (s *CullSystem) Update() {
	for _, e := range s.world.Component.Death.All() {
		s.world.DestroyEntity(e)
	}
}
