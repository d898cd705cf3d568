package component

// PlayerComponent holds the player's combat and ability state
// Position and velocity live in the entity's KineticComponent
type PlayerComponent struct {
	HP    int
	MaxHP int

	// LastDirX/Y is the last nonzero movement direction (unit vector)
	// Blink follows it; defaults to straight up while stationary
	LastDirX, LastDirY float64

	// InvincibleRemaining is the live i-frame window in seconds
	InvincibleRemaining float64

	// BlinkCooldownRemaining gates the blink trigger
	BlinkCooldownRemaining float64

	// MoveMagnitude is this frame's input magnitude, cached for the Focus card
	MoveMagnitude float64
}

// Invincible reports whether i-frames are active
func (p PlayerComponent) Invincible() bool {
	return p.InvincibleRemaining > 0
}
