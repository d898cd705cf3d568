package system

import (
	"math"

	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/vmath"
)

// BulletSystem owns the in-flight projectile set
// Per projectile, per frame, in fixed order: repel impulse, freeze/shrink
// field derivation, position integration, lifetime, wall bounces (at most one
// per axis; a corner can bounce both), bounced-hit enemy damage, removal
// Spawned via EventProjectileSpawnRequest from the enemy system
type BulletSystem struct {
	world *engine.World
}

func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{world: world}
	s.Init()
	return s
}

// Init destroys all live projectiles for a fresh session
func (s *BulletSystem) Init() {
	for _, e := range s.world.Component.Projectile.All() {
		s.world.DestroyEntity(e)
	}
}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Priority() int { return constant.PriorityBullet }

func (s *BulletSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileSpawnRequest,
		event.EventSessionReset,
	}
}

func (s *BulletSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionReset:
		s.Init()
	case event.EventProjectileSpawnRequest:
		if p, ok := ev.Payload.(*event.ProjectileSpawnRequestPayload); ok {
			s.spawnProjectile(p)
		}
	}
}

func (s *BulletSystem) Update() {
	res := s.world.Resource
	if !res.Session.Running() {
		return
	}

	dt := res.Time.DeltaTime.Seconds()
	ledger := res.Upgrade.Ledger
	bounds := res.Config.Bounds

	playerKin, hasPlayer := s.world.Component.Kinetic.Get(res.Player.Entity)

	for _, e := range s.world.Component.Projectile.All() {
		proj, ok := s.world.Component.Projectile.Get(e)
		if !ok {
			continue
		}
		kin, ok := s.world.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		dist := math.Inf(1)
		if hasPlayer {
			dist = vmath.Distance(kin.X, kin.Y, playerKin.X, playerKin.Y)
		}

		// (1) Repel: velocity impulse away from the player, capped at
		// 1.5x base speed
		if strength := ledger.RepelStrengthAt(dist); strength > 0 {
			awayX, awayY := vmath.Normalize2D(kin.X-playerKin.X, kin.Y-playerKin.Y)
			kin.VelX += awayX * strength * dt
			kin.VelY += awayY * strength * dt
			kin.VelX, kin.VelY = vmath.ClampMagnitude(
				kin.VelX, kin.VelY, proj.BaseSpeed*constant.RepelSpeedCapFactor)
		}

		// (2) Freeze and shrink are pure functions of distance; only the
		// effective-radius cache mutates
		speedMult := ledger.FreezeMultiplierAt(dist)
		proj.EffectiveRadius = proj.Radius * ledger.ShrinkMultiplierAt(dist)

		// (3) Integrate
		kin.X += kin.VelX * speedMult * dt
		kin.Y += kin.VelY * speedMult * dt

		// (4) Lifetime
		proj.Lifetime -= dt

		// (5) Wall bounces: clamp to the crossed edge, negate that velocity
		// component, count one bounce per crossed axis
		r := proj.Radius
		if kin.X-r < bounds.X {
			kin.X = bounds.X + r
			kin.VelX, kin.VelY = vmath.ReflectAxisX(kin.VelX, kin.VelY)
			proj.Bounces++
		} else if kin.X+r > bounds.MaxX() {
			kin.X = bounds.MaxX() - r
			kin.VelX, kin.VelY = vmath.ReflectAxisX(kin.VelX, kin.VelY)
			proj.Bounces++
		}
		if kin.Y-r < bounds.Y {
			kin.Y = bounds.Y + r
			kin.VelX, kin.VelY = vmath.ReflectAxisY(kin.VelX, kin.VelY)
			proj.Bounces++
		} else if kin.Y+r > bounds.MaxY() {
			kin.Y = bounds.MaxY() - r
			kin.VelX, kin.VelY = vmath.ReflectAxisY(kin.VelX, kin.VelY)
			proj.Bounces++
		}

		// (6) A bounced projectile damages the first overlapping enemy
		if proj.CanHurtEnemies() && proj.Bounces <= constant.MaxBounces && !proj.Marked {
			s.resolveEnemyHit(&proj, kin)
		}

		// (7) Removal
		if proj.Lifetime <= 0 || proj.Bounces > constant.MaxBounces || proj.Marked {
			proj.Marked = true
			s.world.Component.Death.Set(e, component.DeathComponent{})
		}

		s.world.Component.Projectile.Set(e, proj)
		s.world.Component.Kinetic.Set(e, kin)
	}
}

// resolveEnemyHit applies bounced-hit damage to the first overlapping enemy
// Damage scales with bounce count: a twice-bounced projectile hits harder
func (s *BulletSystem) resolveEnemyHit(proj *component.ProjectileComponent, kin component.KineticComponent) {
	ledger := s.world.Resource.Upgrade.Ledger

	for _, enemyEnt := range s.world.Component.Enemy.All() {
		if s.world.Component.Death.Has(enemyEnt) {
			continue
		}
		en, ok := s.world.Component.Enemy.Get(enemyEnt)
		if !ok {
			continue
		}
		enemyKin, ok := s.world.Component.Kinetic.Get(enemyEnt)
		if !ok {
			continue
		}

		if vmath.Distance(kin.X, kin.Y, enemyKin.X, enemyKin.Y) > constant.EnemyInteractionRadius {
			continue
		}

		damage := int(math.Ceil(float64(proj.Damage) * ledger.ReflectDamageMultiplier() * float64(proj.Bounces)))
		en.Health -= damage

		if en.Health <= 0 {
			s.killEnemy(enemyEnt, en, enemyKin)
		} else {
			s.world.Component.Enemy.Set(enemyEnt, en)
		}

		proj.Marked = true
		return
	}
}

func (s *BulletSystem) killEnemy(e core.Entity, en component.EnemyComponent, kin component.KineticComponent) {
	arch := component.Archetype(en.Type)

	s.world.Component.Death.Set(e, component.DeathComponent{})
	s.world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		Entity: e,
		Points: arch.Points,
		X:      kin.X,
		Y:      kin.Y,
		Splits: arch.Splits,
	})
}

func (s *BulletSystem) spawnProjectile(p *event.ProjectileSpawnRequestPayload) {
	e := s.world.CreateEntity()

	s.world.Component.Projectile.Set(e, component.ProjectileComponent{
		BaseSpeed:       p.BaseSpeed,
		Radius:          constant.ProjectileRadius,
		EffectiveRadius: constant.ProjectileRadius,
		Lifetime:        constant.ProjectileLifetime,
		Damage:          p.Damage,
	})
	s.world.Component.Kinetic.Set(e, component.KineticComponent{
		X: p.OriginX, Y: p.OriginY,
		VelX: p.VelX, VelY: p.VelY,
	})
}
