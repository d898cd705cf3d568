package component

// DeathComponent tags an entity for destruction by the cull system
// Systems mark instead of destroying mid-iteration; the cull pass runs last
type DeathComponent struct{}
