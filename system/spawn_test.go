package system

import (
	"testing"

	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/event"
)

func TestKilledSplitterLeavesTwoMites(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewSpawnSystem(w)

	s.HandleEvent(event.GameEvent{
		Type: event.EventEnemyKilled,
		Payload: &event.EnemyKilledPayload{
			Points: 30, X: 100, Y: 30, Splits: true,
		},
	})

	mites := 0
	for _, e := range w.Component.Enemy.All() {
		en, _ := w.Component.Enemy.Get(e)
		if en.Type != component.EnemyMite {
			t.Errorf("Expected only mites, got type %d", en.Type)
		}
		if en.SpeedFactor != 1.5 {
			t.Errorf("Expected split child speed factor 1.5, got %f", en.SpeedFactor)
		}
		mites++
	}
	if mites != 2 {
		t.Errorf("Expected 2 split children, got %d", mites)
	}
}

func TestNonSplitterKillSpawnsNothing(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewSpawnSystem(w)

	s.HandleEvent(event.GameEvent{
		Type:    event.EventEnemyKilled,
		Payload: &event.EnemyKilledPayload{Points: 10, X: 100, Y: 30},
	})

	if n := w.Component.Enemy.Count(); n != 0 {
		t.Errorf("Expected no spawns from a plain kill, got %d", n)
	}
}

func TestSplitChildrenClampToRegion(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewSpawnSystem(w)
	region := w.Resource.Config.EnemyRegion

	// Death at the region's left edge would put one child outside
	s.HandleEvent(event.GameEvent{
		Type: event.EventEnemyKilled,
		Payload: &event.EnemyKilledPayload{
			Points: 30, X: region.X, Y: 30, Splits: true,
		},
	})

	for _, e := range w.Component.Enemy.All() {
		kin, _ := w.Component.Kinetic.Get(e)
		if !region.Contains(kin.X, kin.Y) {
			t.Errorf("Expected split child inside the region, got (%f, %f)", kin.X, kin.Y)
		}
	}
}

func TestLowHumidityPoolIsTierZero(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewSpawnSystem(w).(*SpawnSystem)

	for i := 0; i < 200; i++ {
		typ := s.rollType(1.0)
		if component.Archetype(typ).Tier != 0 {
			t.Fatalf("Expected tier 0 only at base humidity, got type %d", typ)
		}
	}
}

func TestHighHumidityUnlocksAllTiers(t *testing.T) {
	w := newPlayingWorld(2)
	s := NewSpawnSystem(w).(*SpawnSystem)

	seen := map[component.EnemyType]bool{}
	for i := 0; i < 5000; i++ {
		seen[s.rollType(3.0)] = true
	}

	// Humidity 3.0 clears every tier gate up to tier 4
	for _, typ := range component.PoolTypes {
		if !seen[typ] {
			t.Errorf("Expected type %d available at humidity 3.0", typ)
		}
	}
}

func TestSpawnedEnemyStartsWithGrace(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewSpawnSystem(w).(*SpawnSystem)

	e := s.spawnEnemy(component.EnemyDrifter, 100, 30, 1)
	en, _ := w.Component.Enemy.Get(e)
	if en.GraceRemaining <= 0 {
		t.Error("Expected spawn grace on a fresh enemy")
	}
	if en.Health != component.Archetype(component.EnemyDrifter).Health {
		t.Errorf("Expected archetype health, got %d", en.Health)
	}
}

func TestSessionResetClearsEnemies(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewSpawnSystem(w)

	addEnemy(w, component.EnemyDrifter, 100, 30)
	addEnemy(w, component.EnemyWaver, 120, 30)

	s.HandleEvent(event.GameEvent{Type: event.EventSessionReset})

	if n := w.Component.Enemy.Count(); n != 0 {
		t.Errorf("Expected no enemies after reset, got %d", n)
	}
}
