package component

// KineticComponent holds continuous position and velocity in play units
type KineticComponent struct {
	X, Y       float64 // Position
	VelX, VelY float64 // Velocity in units per second
}
