package system

import (
	"time"

	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/engine"
)

const testDt = 16 * time.Millisecond

// newPlayingWorld builds a world already in the Playing state so a single
// system under test can run without the full registration set
func newPlayingWorld(seed uint64) *engine.World {
	w := engine.NewWorld(seed, true)
	w.Resource.Session.State = core.StatePlaying
	w.Resource.Time.DeltaTime = testDt
	return w
}

// newPlayingGame builds a fully registered game and steps it past the
// countdown into Playing
func newPlayingGame(seed uint64, practice bool) *engine.Game {
	w := engine.NewWorld(seed, practice)
	RegisterAll(w)
	g := engine.NewGame(w)
	stepFor(g, 3100*time.Millisecond)
	return g
}

// stepFor advances a game in fixed-size ticks for roughly the given duration
func stepFor(g *engine.Game, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += testDt {
		g.Step(testDt, engine.NewInputFrame())
	}
}

// addEnemy places an enemy of the given type directly, bypassing the spawn roll
func addEnemy(w *engine.World, t component.EnemyType, x, y float64) core.Entity {
	arch := component.Archetype(t)
	e := w.CreateEntity()
	w.Component.Enemy.Set(e, component.EnemyComponent{
		Type:          t,
		Health:        arch.Health,
		MaxHealth:     arch.Health,
		ShootCooldown: 1e9, // Never fires during the test
		SpeedFactor:   1,
	})
	w.Component.Kinetic.Set(e, component.KineticComponent{X: x, Y: y})
	return e
}

// addProjectile places a projectile directly with the given kinematics
func addProjectile(w *engine.World, x, y, velX, velY, baseSpeed float64) core.Entity {
	e := w.CreateEntity()
	w.Component.Projectile.Set(e, component.ProjectileComponent{
		BaseSpeed:       baseSpeed,
		Radius:          1.5,
		EffectiveRadius: 1.5,
		Lifetime:        12,
		Damage:          1,
	})
	w.Component.Kinetic.Set(e, component.KineticComponent{X: x, Y: y, VelX: velX, VelY: velY})
	return e
}
