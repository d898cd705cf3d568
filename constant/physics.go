package constant

// Play Area
const (
	// PlayWidth and PlayHeight are the simulation bounds in play units
	PlayWidth  = 200.0
	PlayHeight = 120.0

	// EnemyRegionInset shrinks the enemy roam region from the play bounds
	EnemyRegionInset = 8.0

	// EnemyRegionHeightFrac limits enemy roaming to the top of the arena
	EnemyRegionHeightFrac = 0.5
)

// Player Motion
const (
	// PlayerBaseSpeed is movement speed in units per second before multipliers
	PlayerBaseSpeed = 48.0

	// PlayerContactRadius is the nominal player hitbox radius
	PlayerContactRadius = 2.0
)

// Projectile Motion
const (
	// ProjectileRadius is the nominal projectile radius
	ProjectileRadius = 1.5

	// ProjectileLifetime is seconds before an unremoved projectile expires
	ProjectileLifetime = 12.0

	// ProjectileSpeedBase and ProjectileSpeedPerHumidity set enemy fire speed
	ProjectileSpeedBase        = 35.0
	ProjectileSpeedPerHumidity = 3.0

	// MaxBounces is the wall-reflection budget per projectile
	MaxBounces = 2
)

// Enemy Motion
const (
	// EnemyWanderSpeed is base wander speed in units per second
	EnemyWanderSpeed = 10.0

	// EnemyWanderRetarget is seconds between heading re-rolls
	EnemyWanderRetarget = 2.0

	// EnemySpawnGrace is seconds after spawn with no firing or contact damage
	EnemySpawnGrace = 0.8

	// SplitChildSpeedFactor speeds up split children relative to base wander
	SplitChildSpeedFactor = 1.5

	// SplitChildOffset is how far beside the death position children appear
	SplitChildOffset = 3.0
)
