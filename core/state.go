package core

// SessionState identifies the session lifecycle phase
type SessionState uint8

const (
	// StateCountdown is the pre-play countdown before the first frame of Playing
	StateCountdown SessionState = iota

	// StatePlaying is live simulation: movement, spawning, physics all run
	StatePlaying

	// StateCardSelection pauses the simulation while an upgrade choice is pending
	StateCardSelection

	// StateDeath is terminal; entered exactly once per session
	StateDeath
)

func (s SessionState) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateCardSelection:
		return "card_selection"
	case StateDeath:
		return "death"
	default:
		return "unknown"
	}
}
