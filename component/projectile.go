package component

// ProjectileComponent is per-projectile combat state
// Only enemy-fired projectiles exist; velocity lives in the KineticComponent
type ProjectileComponent struct {
	// BaseSpeed is the pre-effect speed, the 1.5x repel cap reference
	BaseSpeed float64

	// Radius is the nominal collision radius
	Radius float64

	// EffectiveRadius is Radius after the shrink field, recomputed each frame
	EffectiveRadius float64

	// Bounces is the wall-reflection count so far; acts as the damage scalar
	// Invariant: 0 <= Bounces, removal the tick it would exceed MaxBounces
	Bounces int

	// Lifetime is remaining seconds before expiry
	Lifetime float64

	// Damage is the pre-multiplier damage of a bounced hit
	Damage int

	// Marked flags removal at end of the bullet pass (scoring hit or overflow)
	Marked bool
}

// CanHurtEnemies reports whether the projectile has bounced at least once
func (p ProjectileComponent) CanHurtEnemies() bool {
	return p.Bounces > 0
}
