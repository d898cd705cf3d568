package system

import (
	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
)

// PlayerSystem owns the player entity: movement, blink, i-frame and
// shield/blink cooldown bookkeeping
// Cooldowns tick only while Playing, so the card-selection pause freezes them
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

// Init recreates the player entity at the arena center
func (s *PlayerSystem) Init() {
	if e := s.world.Resource.Player.Entity; e != core.EntityNone {
		s.world.DestroyEntity(e)
	}

	bounds := s.world.Resource.Config.Bounds
	e := s.world.CreateEntity()

	s.world.Component.Player.Set(e, component.PlayerComponent{
		HP:       constant.PlayerMaxHP,
		MaxHP:    constant.PlayerMaxHP,
		LastDirX: 0,
		LastDirY: -1, // Blink defaults upward while stationary
	})
	s.world.Component.Kinetic.Set(e, component.KineticComponent{
		X: bounds.CenterX(),
		Y: bounds.Y + bounds.Height*0.75, // Start in the lower half, under the enemy region
	})
	s.world.Component.Shield.Set(e, component.ShieldComponent{})

	s.world.Resource.Player.Entity = e
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return constant.PriorityPlayer }

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSessionReset}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventSessionReset {
		s.Init()
	}
}

func (s *PlayerSystem) Update() {
	res := s.world.Resource
	if !res.Session.Running() {
		return
	}

	e := res.Player.Entity
	pl, ok := s.world.Component.Player.Get(e)
	if !ok {
		return
	}
	kin, ok := s.world.Component.Kinetic.Get(e)
	if !ok {
		return
	}

	dt := res.Time.DeltaTime.Seconds()
	ledger := res.Upgrade.Ledger
	in := res.Input

	// Timers decrement unconditionally while the simulation runs
	pl.InvincibleRemaining -= dt
	if pl.InvincibleRemaining < 0 {
		pl.InvincibleRemaining = 0
	}
	pl.BlinkCooldownRemaining -= dt
	if pl.BlinkCooldownRemaining < 0 {
		pl.BlinkCooldownRemaining = 0
	}

	// Shield recharge, ready flag flips once the recharge time elapses
	if ledger.ShieldEnabled() {
		shield, _ := s.world.Component.Shield.Get(e)
		shield.SinceAbsorb += dt
		if !shield.Ready && shield.SinceAbsorb >= ledger.ShieldRechargeTime() {
			shield.Ready = true
		}
		s.world.Component.Shield.Set(e, shield)
	}

	// Movement
	pl.MoveMagnitude = in.Magnitude
	if in.Magnitude > 0 {
		pl.LastDirX, pl.LastDirY = in.MoveX/in.Magnitude, in.MoveY/in.Magnitude
	}

	speed := constant.PlayerBaseSpeed * ledger.SpeedMultiplier()
	kin.VelX = in.MoveX * speed
	kin.VelY = in.MoveY * speed
	kin.X += kin.VelX * dt
	kin.Y += kin.VelY * dt
	kin.X, kin.Y = res.Config.Bounds.Clamp(kin.X, kin.Y)

	// Blink: atomic check-and-reset of the cooldown, no double trigger per frame
	if in.BlinkRequested && ledger.BlinkEnabled() && pl.BlinkCooldownRemaining == 0 {
		dist := ledger.BlinkDistance()
		kin.X += pl.LastDirX * dist
		kin.Y += pl.LastDirY * dist
		kin.X, kin.Y = res.Config.Bounds.Clamp(kin.X, kin.Y)
		pl.BlinkCooldownRemaining = ledger.BlinkCooldown()

		s.world.PushEvent(event.EventHapticTrigger, &event.HapticTriggerPayload{
			Intensity: constant.HapticBlink,
		})
	}

	s.world.Component.Player.Set(e, pl)
	s.world.Component.Kinetic.Set(e, kin)
}
