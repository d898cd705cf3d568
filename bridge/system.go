package bridge

import (
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
)

// System is the engine system that forwards outbound events to a sink
// It runs after the session system so state transitions and the score
// submit reach the sink on the tick after they are decided
type System struct {
	sink Sink
}

// NewSystem wraps a sink; a nil sink falls back to NopSink
func NewSystem(sink Sink) *System {
	if sink == nil {
		sink = NopSink{}
	}
	return &System{sink: sink}
}

func (s *System) Name() string { return "bridge" }

func (s *System) Priority() int { return constant.PriorityBridge }

func (s *System) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStateChanged,
		event.EventScoreSubmit,
		event.EventHapticTrigger,
	}
}

func (s *System) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventStateChanged:
		if p, ok := ev.Payload.(*event.StateChangedPayload); ok {
			s.sink.StateChanged(p)
		}
	case event.EventScoreSubmit:
		if p, ok := ev.Payload.(*event.ScoreSubmitPayload); ok {
			s.sink.ScoreSubmit(p)
		}
	case event.EventHapticTrigger:
		if p, ok := ev.Payload.(*event.HapticTriggerPayload); ok {
			s.sink.Haptic(p)
		}
	}
}

func (s *System) Update() {}

var _ engine.System = (*System)(nil)
