package core

// Entity is a unique identifier for a simulation entity
type Entity uint64

// EntityNone is the zero entity, never allocated by the world
const EntityNone Entity = 0
