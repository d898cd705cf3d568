// Package bridge forwards outbound simulation events to external
// collaborators: score services, haptic hardware, spectator feeds
// The simulation itself never blocks on a sink; delivery happens on the
// sink's own goroutines
package bridge

import "github.com/aposine/monsoon/event"

// Sink receives outbound events from the bridge system
// Implementations must not block: the bridge calls them from the
// simulation tick
type Sink interface {
	StateChanged(p *event.StateChangedPayload)
	ScoreSubmit(p *event.ScoreSubmitPayload)
	Haptic(p *event.HapticTriggerPayload)
}

// NopSink discards everything; the default for hosts without collaborators
type NopSink struct{}

func (NopSink) StateChanged(*event.StateChangedPayload) {}
func (NopSink) ScoreSubmit(*event.ScoreSubmitPayload)   {}
func (NopSink) Haptic(*event.HapticTriggerPayload)      {}
