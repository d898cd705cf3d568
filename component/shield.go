package component

// ShieldComponent is the player's one-time hit absorber
// Ready flips true once SinceAbsorb reaches the ledger's recharge time;
// an absorb consumes Ready and zeroes SinceAbsorb in the same operation
// so a single frame can never double-absorb
type ShieldComponent struct {
	Ready       bool
	SinceAbsorb float64 // Seconds since last absorb (or session start)
}

// TryAbsorb atomically consumes the ready charge
// Returns true if the hit was absorbed
func (s *ShieldComponent) TryAbsorb() bool {
	if !s.Ready {
		return false
	}
	s.Ready = false
	s.SinceAbsorb = 0
	return true
}
