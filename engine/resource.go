package engine

import (
	"time"

	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/status"
	"github.com/aposine/monsoon/upgrade"
	"github.com/aposine/monsoon/vmath"
)

// Resource holds singleton simulation resources, accessed via World.Resource
type Resource struct {
	Time       *TimeResource
	Config     *ConfigResource
	Input      *InputResource
	Session    *SessionResource
	Difficulty *DifficultyResource
	Player     *PlayerResource
	Upgrade    *UpgradeResource
	Event      *EventQueueResource
	Status     *status.Registry
	Rng        *vmath.FastRand
}

// TimeResource wraps frame time data for systems
// Updated by Game.Step at the start of every tick
type TimeResource struct {
	// DeltaTime is the host-supplied duration since the last tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// ConfigResource holds the static session geometry
type ConfigResource struct {
	// Bounds is the full play area; projectile bounces resolve against its edges
	Bounds core.Rect

	// EnemyRegion is the arena sub-region enemies wander inside
	EnemyRegion core.Rect
}

// InputResource is the current frame's input state
// Frame is staged raw by Game.Step; the input system normalizes it into the
// derived fields at the start of the tick
type InputResource struct {
	// Frame is the raw host input for this tick
	Frame InputFrame

	// MoveX, MoveY is the movement vector, magnitude-clamped to 1
	MoveX, MoveY float64

	// Magnitude is cached for the Focus slow-movement check
	Magnitude float64

	// BlinkRequested is true when a blink trigger fired this tick
	BlinkRequested bool

	// CardChoice is the pending card pick for this tick, NoChoice if none
	CardChoice int
}

// SessionResource is the session lifecycle state owned by the session system
type SessionResource struct {
	State      core.SessionState
	IsPractice bool
	SessionID  string

	// Score accrues survival points and kill points
	Score int64

	// CardTimer is seconds of Playing since the last selection pause
	CardTimer float64

	// CountdownRemaining runs the pre-play countdown
	CountdownRemaining float64
}

// Running reports whether gameplay systems should simulate this tick
func (s *SessionResource) Running() bool {
	return s.State == core.StatePlaying
}

// DifficultyResource is the difficulty snapshot
type DifficultyResource struct {
	// SurvivalTime is seconds elapsed while Playing
	SurvivalTime float64

	// Humidity is the scalar difficulty multiplier, >= 1, non-decreasing
	Humidity float64
}

// PlayerResource identifies the player entity
type PlayerResource struct {
	Entity core.Entity
}

// UpgradeResource carries the card ledger and selector
type UpgradeResource struct {
	Ledger   *upgrade.Ledger
	Selector *upgrade.Selector
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// newResource builds the resource set for a fresh world
func newResource(seed uint64, practice bool) *Resource {
	bounds := core.Rect{Width: constant.PlayWidth, Height: constant.PlayHeight}
	enemyRegion := core.Rect{
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.Width,
		Height: bounds.Height * constant.EnemyRegionHeightFrac,
	}.Inset(constant.EnemyRegionInset)

	rng := vmath.NewFastRand(seed)
	ledger := upgrade.NewLedger()

	return &Resource{
		Time:   &TimeResource{},
		Config: &ConfigResource{Bounds: bounds, EnemyRegion: enemyRegion},
		Input:  &InputResource{Frame: NewInputFrame(), CardChoice: NoChoice},
		Session: &SessionResource{
			State:              core.StateCountdown,
			IsPractice:         practice,
			CountdownRemaining: constant.CountdownDuration.Seconds(),
		},
		Difficulty: &DifficultyResource{Humidity: constant.HumidityBase},
		Player:     &PlayerResource{},
		Upgrade: &UpgradeResource{
			Ledger:   ledger,
			Selector: upgrade.NewSelector(ledger, rng),
		},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Status: status.NewRegistry(),
		Rng:    rng,
	}
}
