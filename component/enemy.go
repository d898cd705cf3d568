package component

// EnemyType is the closed enumeration of enemy archetypes
type EnemyType uint8

const (
	EnemyDrifter EnemyType = iota
	EnemyLobber
	EnemySpitter
	EnemyWaver
	EnemyVolleyer
	EnemyScatter
	EnemyBloater
	EnemyFanner
	EnemySpindle
	EnemyRinger
	EnemyMite // Split child only, never drawn from the spawn pool
)

// PatternTag selects the burst shape an enemy fires
type PatternTag uint8

const (
	PatternSingle PatternTag = iota
	PatternAimedDouble
	PatternSpread3
	PatternSpread5
	PatternRing
	PatternSpiral
	PatternBurst
	PatternWave
	PatternRandomSpread
)

// EnemyComponent is per-entity enemy state
// Archetype stats come from Archetype(Type); this holds only what mutates
type EnemyComponent struct {
	Type      EnemyType
	Health    int
	MaxHealth int

	// ShootCooldown counts down to the next burst
	ShootCooldown float64

	// GraceRemaining suppresses firing and contact damage after spawn
	GraceRemaining float64

	// WanderRemaining counts down to the next heading re-roll
	WanderRemaining float64

	// SpiralOffset is the persistent rotating angle for PatternSpiral
	SpiralOffset float64

	// AnimClock is the enemy's own animation time, drives PatternWave
	AnimClock float64

	// SpeedFactor scales wander speed (split children move faster)
	SpeedFactor float64
}

// EnemyArchetype holds the fixed per-type stats
type EnemyArchetype struct {
	Pattern  PatternTag
	Health   int
	BaseRate float64 // Seconds between bursts before humidity and Calm scaling
	Points   int
	Splits   bool
	Tier     int // Humidity tier gating pool entry
}

var enemyArchetypes = [...]EnemyArchetype{
	EnemyDrifter:  {Pattern: PatternSingle, Health: 2, BaseRate: 2.4, Points: 10, Tier: 0},
	EnemyLobber:   {Pattern: PatternAimedDouble, Health: 2, BaseRate: 2.8, Points: 15, Tier: 0},
	EnemySpitter:  {Pattern: PatternSpread3, Health: 3, BaseRate: 3.0, Points: 20, Tier: 1},
	EnemyWaver:    {Pattern: PatternWave, Health: 3, BaseRate: 2.6, Points: 20, Tier: 1},
	EnemyVolleyer: {Pattern: PatternBurst, Health: 3, BaseRate: 3.2, Points: 25, Tier: 2},
	EnemyScatter:  {Pattern: PatternRandomSpread, Health: 4, BaseRate: 3.0, Points: 25, Tier: 2},
	EnemyBloater:  {Pattern: PatternSingle, Health: 5, BaseRate: 3.6, Points: 30, Splits: true, Tier: 2},
	EnemyFanner:   {Pattern: PatternSpread5, Health: 4, BaseRate: 3.4, Points: 35, Tier: 3},
	EnemySpindle:  {Pattern: PatternSpiral, Health: 4, BaseRate: 1.8, Points: 35, Tier: 3},
	EnemyRinger:   {Pattern: PatternRing, Health: 6, BaseRate: 4.0, Points: 50, Tier: 4},
	EnemyMite:     {Pattern: PatternSingle, Health: 1, BaseRate: 2.0, Points: 5, Tier: 0},
}

// Archetype returns the fixed stats for an enemy type
func Archetype(t EnemyType) EnemyArchetype {
	return enemyArchetypes[t]
}

// PoolTypes lists the spawn-pool archetypes in tier order (Mite excluded)
var PoolTypes = []EnemyType{
	EnemyDrifter, EnemyLobber,
	EnemySpitter, EnemyWaver,
	EnemyVolleyer, EnemyScatter, EnemyBloater,
	EnemyFanner, EnemySpindle,
	EnemyRinger,
}
