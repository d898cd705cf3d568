package system

import (
	"math"
	"testing"

	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/vmath"
)

func TestSpread3Angles(t *testing.T) {
	en := &component.EnemyComponent{}
	shots := expandPattern(component.PatternSpread3, 1.0, 1.0, en, vmath.NewFastRand(1))

	if len(shots) != 3 {
		t.Fatalf("Expected 3 shots, got %d", len(shots))
	}
	want := []float64{0.7, 1.0, 1.3}
	for i, shot := range shots {
		if math.Abs(shot.angle-want[i]) > 1e-9 {
			t.Errorf("Expected shot %d at %f, got %f", i, want[i], shot.angle)
		}
	}
}

func TestSpread5CountAndSpacing(t *testing.T) {
	en := &component.EnemyComponent{}
	shots := expandPattern(component.PatternSpread5, 0, 1.0, en, vmath.NewFastRand(1))

	if len(shots) != 5 {
		t.Fatalf("Expected 5 shots, got %d", len(shots))
	}
	for i := 1; i < len(shots); i++ {
		gap := shots[i].angle - shots[i-1].angle
		if math.Abs(gap-0.25) > 1e-9 {
			t.Errorf("Expected 0.25 spacing, got %f", gap)
		}
	}
}

func TestRingCountGrowsWithHumidity(t *testing.T) {
	en := &component.EnemyComponent{}

	low := expandPattern(component.PatternRing, 0, 1.0, en, vmath.NewFastRand(1))
	if len(low) != 9 {
		t.Errorf("Expected 9 ring shots at humidity 1, got %d", len(low))
	}

	high := expandPattern(component.PatternRing, 0, 5.0, en, vmath.NewFastRand(1))
	if len(high) != 10 {
		t.Errorf("Expected ring capped at 10 shots, got %d", len(high))
	}
}

func TestSpiralOffsetAdvances(t *testing.T) {
	en := &component.EnemyComponent{}

	first := expandPattern(component.PatternSpiral, 0, 1.0, en, vmath.NewFastRand(1))
	second := expandPattern(component.PatternSpiral, 0, 1.0, en, vmath.NewFastRand(1))

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("Expected 3 shots per spiral burst, got %d and %d", len(first), len(second))
	}
	delta := second[0].angle - first[0].angle
	if math.Abs(delta-0.5) > 1e-9 {
		t.Errorf("Expected spiral to advance 0.5 between bursts, got %f", delta)
	}
}

func TestAimedDoubleStraddlesBase(t *testing.T) {
	en := &component.EnemyComponent{}
	shots := expandPattern(component.PatternAimedDouble, 2.0, 1.0, en, vmath.NewFastRand(1))

	if len(shots) != 2 {
		t.Fatalf("Expected 2 shots, got %d", len(shots))
	}
	if math.Abs(shots[0].angle-1.85) > 1e-9 || math.Abs(shots[1].angle-2.15) > 1e-9 {
		t.Errorf("Expected angles 1.85 and 2.15, got %f and %f", shots[0].angle, shots[1].angle)
	}
}

func TestRandomSpreadBounds(t *testing.T) {
	en := &component.EnemyComponent{}
	rng := vmath.NewFastRand(7)

	for i := 0; i < 100; i++ {
		shots := expandPattern(component.PatternRandomSpread, 0, 1.0, en, rng)
		if len(shots) < 2 || len(shots) > 4 {
			t.Fatalf("Expected 2 to 4 shots, got %d", len(shots))
		}
		for _, shot := range shots {
			if shot.angle < -0.6 || shot.angle > 0.6 {
				t.Errorf("Expected jitter within 0.6, got %f", shot.angle)
			}
			if shot.speedFactor < 0.8 || shot.speedFactor > 1.2 {
				t.Errorf("Expected speed factor in [0.8, 1.2], got %f", shot.speedFactor)
			}
		}
	}
}

func TestEnemyFiresAfterCooldown(t *testing.T) {
	w := newPlayingWorld(1)
	NewPlayerSystem(w)
	s := NewEnemySystem(w)

	e := addEnemy(w, component.EnemyDrifter, 100, 30)
	en, _ := w.Component.Enemy.Get(e)
	en.ShootCooldown = 0.001
	w.Component.Enemy.Set(e, en)

	s.Update()

	spawns := 0
	for _, ev := range w.Resource.Event.Queue.Consume() {
		if ev.Type == event.EventProjectileSpawnRequest {
			spawns++
		}
	}
	if spawns != 1 {
		t.Errorf("Expected a single spawn request from a drifter, got %d", spawns)
	}

	en, _ = w.Component.Enemy.Get(e)
	if en.ShootCooldown <= 0 {
		t.Error("Expected cooldown reset after firing")
	}
}

func TestGraceSuppressesFiring(t *testing.T) {
	w := newPlayingWorld(1)
	NewPlayerSystem(w)
	s := NewEnemySystem(w)

	e := addEnemy(w, component.EnemyDrifter, 100, 30)
	en, _ := w.Component.Enemy.Get(e)
	en.ShootCooldown = 0.001
	en.GraceRemaining = 1
	w.Component.Enemy.Set(e, en)

	s.Update()

	for _, ev := range w.Resource.Event.Queue.Consume() {
		if ev.Type == event.EventProjectileSpawnRequest {
			t.Fatal("Expected no fire during spawn grace")
		}
	}
}

func TestEnemyStaysInsideRegion(t *testing.T) {
	w := newPlayingWorld(3)
	NewPlayerSystem(w)
	s := NewEnemySystem(w)

	e := addEnemy(w, component.EnemyDrifter, 100, 30)

	for i := 0; i < 1000; i++ {
		s.Update()
		kin, _ := w.Component.Kinetic.Get(e)
		if !w.Resource.Config.EnemyRegion.Contains(kin.X, kin.Y) {
			t.Fatalf("Enemy left the region at (%f, %f)", kin.X, kin.Y)
		}
	}
}
