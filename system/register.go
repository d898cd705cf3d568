package system

import (
	"github.com/aposine/monsoon/engine"
)

// RegisterAll adds the full gameplay system set to a world in priority order
// Hosts add their own bridge system afterwards when they need outbound events
func RegisterAll(world *engine.World) {
	world.AddSystem(NewInputSystem(world))
	world.AddSystem(NewPlayerSystem(world))
	world.AddSystem(NewEnemySystem(world))
	world.AddSystem(NewBulletSystem(world))
	world.AddSystem(NewCollisionSystem(world))
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewDifficultySystem(world))
	world.AddSystem(NewSessionSystem(world))
	world.AddSystem(NewCullSystem(world))
}
