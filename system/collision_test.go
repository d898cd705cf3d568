package system

import (
	"testing"

	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/upgrade"
)

// collisionWorld builds a playing world with a live player and the collision
// system under test
func collisionWorld(seed uint64) (*engine.World, *CollisionSystem) {
	w := newPlayingWorld(seed)
	NewPlayerSystem(w)
	s := NewCollisionSystem(w).(*CollisionSystem)
	return w, s
}

func TestProjectileHitDamagesPlayer(t *testing.T) {
	w, s := collisionWorld(1)

	playerKin, _ := w.Component.Kinetic.Get(w.Resource.Player.Entity)
	proj := addProjectile(w, playerKin.X, playerKin.Y, 0, 0, 40)

	s.Update()

	pl, _ := w.Component.Player.Get(w.Resource.Player.Entity)
	if pl.HP != 2 {
		t.Errorf("Expected HP 2 after hit, got %d", pl.HP)
	}
	if pl.InvincibleRemaining <= 0 {
		t.Error("Expected invincibility frames after hit")
	}
	if !w.Component.Death.Has(proj) {
		t.Error("Expected the hitting projectile to be removed")
	}

	var damaged *event.PlayerDamagedPayload
	for _, ev := range w.Resource.Event.Queue.Consume() {
		if p, ok := ev.Payload.(*event.PlayerDamagedPayload); ok {
			damaged = p
		}
	}
	if damaged == nil {
		t.Fatal("Expected a player damaged event")
	}
	if damaged.HPLeft != 2 {
		t.Errorf("Expected HPLeft 2 in payload, got %d", damaged.HPLeft)
	}
}

func TestInvinciblePlayerIgnoresHits(t *testing.T) {
	w, s := collisionWorld(1)

	e := w.Resource.Player.Entity
	pl, _ := w.Component.Player.Get(e)
	pl.InvincibleRemaining = 1
	w.Component.Player.Set(e, pl)

	playerKin, _ := w.Component.Kinetic.Get(e)
	addProjectile(w, playerKin.X, playerKin.Y, 0, 0, 40)

	s.Update()

	pl, _ = w.Component.Player.Get(e)
	if pl.HP != 3 {
		t.Errorf("Expected full HP while invincible, got %d", pl.HP)
	}
}

func TestShieldAbsorbsBeforeHP(t *testing.T) {
	w, s := collisionWorld(1)
	w.Resource.Upgrade.Ledger = upgrade.NewLedgerFromLevels(map[upgrade.Card]int{
		upgrade.CardShield: 1,
	})

	e := w.Resource.Player.Entity
	shield, _ := w.Component.Shield.Get(e)
	shield.Ready = true
	w.Component.Shield.Set(e, shield)

	playerKin, _ := w.Component.Kinetic.Get(e)
	addProjectile(w, playerKin.X, playerKin.Y, 0, 0, 40)

	s.Update()

	pl, _ := w.Component.Player.Get(e)
	if pl.HP != 3 {
		t.Errorf("Expected shield to absorb the hit, HP %d", pl.HP)
	}
	shield, _ = w.Component.Shield.Get(e)
	if shield.Ready {
		t.Error("Expected the shield charge consumed")
	}
	if shield.SinceAbsorb != 0 {
		t.Errorf("Expected recharge clock restarted, got %f", shield.SinceAbsorb)
	}
}

func TestEnemyContactDamagesPlayer(t *testing.T) {
	w, s := collisionWorld(1)

	playerKin, _ := w.Component.Kinetic.Get(w.Resource.Player.Entity)
	addEnemy(w, component.EnemyDrifter, playerKin.X, playerKin.Y)

	s.Update()

	pl, _ := w.Component.Player.Get(w.Resource.Player.Entity)
	if pl.HP != 2 {
		t.Errorf("Expected contact damage, HP %d", pl.HP)
	}
}

func TestGraceEnemyDoesNotDamage(t *testing.T) {
	w, s := collisionWorld(1)

	playerKin, _ := w.Component.Kinetic.Get(w.Resource.Player.Entity)
	e := addEnemy(w, component.EnemyDrifter, playerKin.X, playerKin.Y)
	en, _ := w.Component.Enemy.Get(e)
	en.GraceRemaining = 0.5
	w.Component.Enemy.Set(e, en)

	s.Update()

	pl, _ := w.Component.Player.Get(w.Resource.Player.Entity)
	if pl.HP != 3 {
		t.Errorf("Expected no damage during spawn grace, HP %d", pl.HP)
	}
}

func TestSingleHitPerFrame(t *testing.T) {
	w, s := collisionWorld(1)

	// Two overlapping projectiles: i-frames from the first block the second
	playerKin, _ := w.Component.Kinetic.Get(w.Resource.Player.Entity)
	addProjectile(w, playerKin.X, playerKin.Y, 0, 0, 40)
	addProjectile(w, playerKin.X, playerKin.Y, 0, 0, 40)

	s.Update()

	pl, _ := w.Component.Player.Get(w.Resource.Player.Entity)
	if pl.HP != 2 {
		t.Errorf("Expected one hit per frame, HP %d", pl.HP)
	}
}
