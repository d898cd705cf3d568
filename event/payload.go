package event

import (
	"github.com/aposine/monsoon/core"
)

// CardChoiceRequestPayload carries the host's card pick
type CardChoiceRequestPayload struct {
	Index int // 0..2, validated by the selector
}

// ProjectileSpawnRequestPayload contains initial state for one enemy-fired projectile
type ProjectileSpawnRequestPayload struct {
	OriginX, OriginY float64
	VelX, VelY       float64 // Full velocity, pattern speed factor already applied
	BaseSpeed        float64 // Pre-effect speed, cap reference for repel
	Damage           int
}

// EnemyKilledPayload describes a dead enemy for scoring and split handling
type EnemyKilledPayload struct {
	Entity core.Entity
	Points int
	X, Y   float64
	Splits bool
}

// PlayerDamagedPayload contains the damage applied to the player
type PlayerDamagedPayload struct {
	Amount int
	HPLeft int
}

// StateChangedPayload describes a session state transition
type StateChangedPayload struct {
	From core.SessionState
	To   core.SessionState
}

// ScoreSubmitPayload carries the final session result
type ScoreSubmitPayload struct {
	SessionID      string
	SurvivalTimeMs int64
	Score          int64
}

// HapticTriggerPayload is an advisory rumble intensity in [0,1]
type HapticTriggerPayload struct {
	Intensity float64
}
