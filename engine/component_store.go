package engine

import (
	"github.com/aposine/monsoon/component"
)

// ComponentStore bundles typed stores for direct field access
// Systems reach components as w.Component.Enemy etc. with no runtime lookup
type ComponentStore struct {
	Kinetic    *Store[component.KineticComponent]
	Player     *Store[component.PlayerComponent]
	Shield     *Store[component.ShieldComponent]
	Enemy      *Store[component.EnemyComponent]
	Projectile *Store[component.ProjectileComponent]
	Death      *Store[component.DeathComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetic:    NewStore[component.KineticComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Shield:     NewStore[component.ShieldComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Death:      NewStore[component.DeathComponent](),
	}
}
