package system

import (
	"math"

	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/vmath"
)

// EnemySystem moves enemies and expands their fire bursts into projectile
// spawn requests
// Aim chaos jitter is rolled once per burst, before pattern expansion
type EnemySystem struct {
	world *engine.World
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{world: world}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return constant.PriorityEnemy }

func (s *EnemySystem) EventTypes() []event.EventType {
	return nil
}

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {}

func (s *EnemySystem) Update() {
	res := s.world.Resource
	if !res.Session.Running() {
		return
	}

	dt := res.Time.DeltaTime.Seconds()
	humidity := res.Difficulty.Humidity
	ledger := res.Upgrade.Ledger
	region := res.Config.EnemyRegion
	rng := res.Rng

	playerKin, hasPlayer := s.world.Component.Kinetic.Get(res.Player.Entity)

	for _, e := range s.world.Component.Enemy.All() {
		en, ok := s.world.Component.Enemy.Get(e)
		if !ok {
			continue
		}
		kin, ok := s.world.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		en.AnimClock += dt
		if en.GraceRemaining > 0 {
			en.GraceRemaining -= dt
		}

		// Wander: re-roll heading roughly every couple of seconds
		en.WanderRemaining -= dt
		if en.WanderRemaining <= 0 {
			angle := rng.Range(0, 2*math.Pi)
			speed := constant.EnemyWanderSpeed * en.SpeedFactor
			dirX, dirY := vmath.FromAngle(angle)
			kin.VelX, kin.VelY = dirX*speed, dirY*speed
			en.WanderRemaining = constant.EnemyWanderRetarget * rng.Range(0.75, 1.25)
		}

		kin.X += kin.VelX * dt
		kin.Y += kin.VelY * dt
		// Enemies stay inside their reserved sub-region
		kin.X, kin.Y = region.Clamp(kin.X, kin.Y)

		// Fire once the cooldown expires, unless still in spawn grace
		if hasPlayer && en.GraceRemaining <= 0 {
			en.ShootCooldown -= dt
			if en.ShootCooldown <= 0 {
				s.fireBurst(&en, kin, playerKin, humidity)
				arch := component.Archetype(en.Type)
				en.ShootCooldown = (arch.BaseRate / humidity) * ledger.FireRateDivisor()
			}
		}

		s.world.Component.Enemy.Set(e, en)
		s.world.Component.Kinetic.Set(e, kin)
	}
}

// fireBurst expands one burst into projectile spawn requests
func (s *EnemySystem) fireBurst(en *component.EnemyComponent, from, target component.KineticComponent, humidity float64) {
	res := s.world.Resource

	baseAngle := vmath.Angle(target.X-from.X, target.Y-from.Y)

	// Chaos jitter once per burst, not per projectile
	if spread := res.Upgrade.Ledger.ChaosSpread(); spread > 0 {
		baseAngle += res.Rng.Symmetric(spread)
	}

	speed := constant.ProjectileSpeedBase + humidity*constant.ProjectileSpeedPerHumidity
	pattern := component.Archetype(en.Type).Pattern

	for _, shot := range expandPattern(pattern, baseAngle, humidity, en, res.Rng) {
		dirX, dirY := vmath.FromAngle(shot.angle)
		v := speed * shot.speedFactor
		s.world.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnRequestPayload{
			OriginX:   from.X,
			OriginY:   from.Y,
			VelX:      dirX * v,
			VelY:      dirY * v,
			BaseSpeed: v,
			Damage:    constant.ProjectileBaseDamage,
		})
	}
}

// patternShot is one projectile of an expanded burst
type patternShot struct {
	angle       float64
	speedFactor float64
}

// expandPattern turns a pattern tag into concrete shot angles and speeds
// Mutates per-enemy pattern state (spiral offset) where the pattern carries it
func expandPattern(tag component.PatternTag, baseAngle, humidity float64, en *component.EnemyComponent, rng *vmath.FastRand) []patternShot {
	switch tag {
	case component.PatternSpread3:
		return []patternShot{
			{baseAngle - 0.3, 1.0},
			{baseAngle, 1.0},
			{baseAngle + 0.3, 1.0},
		}

	case component.PatternSpread5:
		shots := make([]patternShot, 0, 5)
		for i := -2; i <= 2; i++ {
			shots = append(shots, patternShot{baseAngle + float64(i)*0.25, 0.9})
		}
		return shots

	case component.PatternRing:
		n := 8 + int(math.Floor(humidity))
		if n > 10 {
			n = 10
		}
		shots := make([]patternShot, 0, n)
		for i := 0; i < n; i++ {
			shots = append(shots, patternShot{baseAngle + float64(i)*2*math.Pi/float64(n), 0.7})
		}
		return shots

	case component.PatternSpiral:
		shots := make([]patternShot, 0, 3)
		for i := 0; i < 3; i++ {
			shots = append(shots, patternShot{baseAngle + en.SpiralOffset + float64(i)*2*math.Pi/3, 0.8})
		}
		en.SpiralOffset += 0.5
		return shots

	case component.PatternBurst:
		return []patternShot{
			{baseAngle, 1.0},
			{baseAngle, 0.9},
			{baseAngle, 0.8},
		}

	case component.PatternWave:
		offset := 0.5 * math.Sin(en.AnimClock*3)
		return []patternShot{
			{baseAngle - offset, 1.0},
			{baseAngle + offset, 1.0},
		}

	case component.PatternRandomSpread:
		n := 2 + rng.Intn(3)
		shots := make([]patternShot, 0, n)
		for i := 0; i < n; i++ {
			shots = append(shots, patternShot{baseAngle + rng.Symmetric(0.6), rng.Range(0.8, 1.2)})
		}
		return shots

	case component.PatternAimedDouble:
		return []patternShot{
			{baseAngle - 0.15, 1.0},
			{baseAngle + 0.15, 1.0},
		}

	default: // PatternSingle
		return []patternShot{{baseAngle, 1.0}}
	}
}
