package constant

// Player Combat
const (
	// PlayerMaxHP is starting maximum hit points (Vigor raises it)
	PlayerMaxHP = 3

	// PlayerHitDamage is damage per projectile or contact hit
	PlayerHitDamage = 1

	// EnemyContactRadius is the enemy body radius for player contact checks
	EnemyContactRadius = 2.5
)

// Bounced Projectile vs Enemy
const (
	// EnemyInteractionRadius is the fixed radius for bounced-hit tests
	EnemyInteractionRadius = 3.0

	// ProjectileBaseDamage is pre-multiplier damage of a bounced hit
	ProjectileBaseDamage = 1
)

// Haptics (advisory intensities in [0,1])
const (
	HapticPlayerHit = 1.0
	HapticEnemyKill = 0.6
	HapticBlink     = 0.3
)
