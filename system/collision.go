package system

import (
	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/vmath"
)

// CollisionSystem resolves everything that can hurt the player: projectile
// overlap and enemy body contact. Shield charges absorb a hit before HP;
// any HP loss grants invincibility frames
type CollisionSystem struct {
	world *engine.World
}

func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return constant.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType { return nil }

func (s *CollisionSystem) HandleEvent(event.GameEvent) {}

func (s *CollisionSystem) Update() {
	res := s.world.Resource
	if !res.Session.Running() {
		return
	}

	playerEnt := res.Player.Entity
	player, ok := s.world.Component.Player.Get(playerEnt)
	if !ok || player.Invincible() {
		return
	}
	playerKin, ok := s.world.Component.Kinetic.Get(playerEnt)
	if !ok {
		return
	}

	movingSlowly := player.MoveMagnitude < constant.FocusSlowThreshold
	hitbox := constant.PlayerContactRadius * res.Upgrade.Ledger.HitboxMultiplier(movingSlowly)

	for _, e := range s.world.Component.Projectile.All() {
		proj, ok := s.world.Component.Projectile.Get(e)
		if !ok || proj.Marked {
			continue
		}
		kin, ok := s.world.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		if vmath.Distance(kin.X, kin.Y, playerKin.X, playerKin.Y) > hitbox+proj.EffectiveRadius {
			continue
		}

		proj.Marked = true
		s.world.Component.Projectile.Set(e, proj)
		s.world.Component.Death.Set(e, component.DeathComponent{})

		s.hitPlayer(playerEnt, &player)
		if player.Invincible() {
			break
		}
	}

	if player.Invincible() {
		return
	}

	for _, e := range s.world.Component.Enemy.All() {
		if s.world.Component.Death.Has(e) {
			continue
		}
		en, ok := s.world.Component.Enemy.Get(e)
		if !ok || en.GraceRemaining > 0 {
			continue
		}
		kin, ok := s.world.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		if vmath.Distance(kin.X, kin.Y, playerKin.X, playerKin.Y) > hitbox+constant.EnemyContactRadius {
			continue
		}

		s.hitPlayer(playerEnt, &player)
		break
	}
}

// hitPlayer consumes a shield charge when one is ready, otherwise applies
// damage and grants invincibility frames
func (s *CollisionSystem) hitPlayer(playerEnt core.Entity, player *component.PlayerComponent) {
	res := s.world.Resource

	if res.Upgrade.Ledger.ShieldEnabled() {
		if shield, ok := s.world.Component.Shield.Get(playerEnt); ok {
			if shield.TryAbsorb() {
				s.world.Component.Shield.Set(playerEnt, shield)
				return
			}
		}
	}

	player.HP -= constant.PlayerHitDamage
	player.InvincibleRemaining = res.Upgrade.Ledger.IFrameDuration()
	s.world.Component.Player.Set(playerEnt, *player)

	s.world.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
		Amount: constant.PlayerHitDamage,
		HPLeft: player.HP,
	})
	s.world.PushEvent(event.EventHapticTrigger, &event.HapticTriggerPayload{
		Intensity: constant.HapticPlayerHit,
	})
}
