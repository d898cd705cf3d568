package system

import (
	"sync/atomic"

	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
)

// SpawnSystem rolls a Bernoulli spawn check every playing frame and seeds new
// enemies inside the enemy region. The eligible type pool widens with
// humidity: tier t unlocks once humidity reaches 1 + 0.4t
// It also owns split resolution: a killed splitter leaves two mites behind
type SpawnSystem struct {
	world *engine.World

	statSpawned *atomic.Int64
	statAlive   *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world:       world,
		statSpawned: world.Resource.Status.Ints.Get("spawn.total"),
		statAlive:   world.Resource.Status.Ints.Get("spawn.alive"),
	}
	s.Init()
	return s
}

// Init clears all enemies for a fresh session
func (s *SpawnSystem) Init() {
	for _, e := range s.world.Component.Enemy.All() {
		s.world.DestroyEntity(e)
	}
	s.statSpawned.Store(0)
	s.statAlive.Store(0)
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return constant.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventSessionReset,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionReset:
		s.Init()
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok && p.Splits {
			s.spawnSplitChildren(p.X, p.Y)
		}
	}
}

func (s *SpawnSystem) Update() {
	res := s.world.Resource
	s.statAlive.Store(int64(s.world.Component.Enemy.Count()))
	if !res.Session.Running() {
		return
	}

	chance := constant.SpawnRateBase + res.Difficulty.Humidity*constant.SpawnRateSlope
	if chance > constant.SpawnRateCap {
		chance = constant.SpawnRateCap
	}
	if !res.Rng.Chance(chance) {
		return
	}

	region := res.Config.EnemyRegion
	x := res.Rng.Range(region.X, region.MaxX())
	y := res.Rng.Range(region.Y, region.MaxY())
	s.spawnEnemy(s.rollType(res.Difficulty.Humidity), x, y, 1.0)
}

// rollType draws uniformly from the tiers unlocked at the given humidity
func (s *SpawnSystem) rollType(humidity float64) component.EnemyType {
	eligible := 0
	for _, t := range component.PoolTypes {
		tier := component.Archetype(t).Tier
		if humidity >= constant.HumidityBase+constant.SpawnTierHumidityStep*float64(tier) {
			eligible++
		}
	}
	if eligible == 0 {
		return component.PoolTypes[0]
	}
	return component.PoolTypes[s.world.Resource.Rng.Intn(eligible)]
}

func (s *SpawnSystem) spawnEnemy(t component.EnemyType, x, y, speedFactor float64) core.Entity {
	arch := component.Archetype(t)
	rng := s.world.Resource.Rng

	e := s.world.CreateEntity()
	s.world.Component.Enemy.Set(e, component.EnemyComponent{
		Type:            t,
		Health:          arch.Health,
		MaxHealth:       arch.Health,
		ShootCooldown:   arch.BaseRate * rng.Range(0.5, 1.0),
		GraceRemaining:  constant.EnemySpawnGrace,
		WanderRemaining: 0, // First enemy update rolls a heading
		SpeedFactor:     speedFactor,
	})
	s.world.Component.Kinetic.Set(e, component.KineticComponent{X: x, Y: y})

	s.statSpawned.Add(1)
	return e
}

// spawnSplitChildren places two mites beside a dead splitter
// Positions clamp to the enemy region when the death sat near an edge
func (s *SpawnSystem) spawnSplitChildren(x, y float64) {
	region := s.world.Resource.Config.EnemyRegion
	for _, dx := range [2]float64{-constant.SplitChildOffset, constant.SplitChildOffset} {
		cx, cy := region.Clamp(x+dx, y)
		s.spawnEnemy(component.EnemyMite, cx, cy, constant.SplitChildSpeedFactor)
	}
}
