package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventSessionReset requests all systems to reset session state
	// Trigger: host on restart after death
	// Consumer: all systems | Payload: nil
	EventSessionReset EventType = iota

	// === Input Event ===

	// EventBlinkRequest signals a discrete blink trigger from the host
	// Trigger: host input layer
	// Consumer: PlayerSystem | Payload: nil
	EventBlinkRequest

	// EventCardChoiceRequest signals a card choice index from the host
	// Trigger: host input layer, valid only during card selection
	// Consumer: SessionSystem | Payload: *CardChoiceRequestPayload
	EventCardChoiceRequest

	// === Combat Event ===

	// EventProjectileSpawnRequest requests a new enemy-fired projectile
	// Trigger: EnemySystem on burst expansion
	// Consumer: BulletSystem | Payload: *ProjectileSpawnRequestPayload
	EventProjectileSpawnRequest

	// EventEnemyKilled signals an enemy's health reached zero
	// Trigger: BulletSystem on a lethal bounced hit
	// Consumer: SessionSystem (score), SpawnSystem (splits) | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerDamaged signals the player took one point of damage
	// Trigger: CollisionSystem after shield branching
	// Consumer: SessionSystem (telemetry; death is observed from hp state
	// the same tick, not from this event) | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// === Outbound Event ===
	// Forwarded to external collaborators by the bridge; the simulation
	// itself never consumes these

	// EventStateChanged notifies a session state transition
	// Trigger: SessionSystem on every transition
	// Consumer: bridge.System | Payload: *StateChangedPayload
	EventStateChanged

	// EventScoreSubmit carries the final score, exactly once per non-practice session
	// Trigger: SessionSystem at the Death transition
	// Consumer: bridge.System | Payload: *ScoreSubmitPayload
	EventScoreSubmit

	// EventHapticTrigger is an advisory haptic pulse on hit/kill/blink
	// Trigger: SessionSystem, PlayerSystem
	// Consumer: bridge.System | Payload: *HapticTriggerPayload
	EventHapticTrigger
)

// GameEvent represents a single game event with its payload
type GameEvent struct {
	Type    EventType
	Payload any
}
