package system

import (
	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/vmath"
)

// InputSystem normalizes the host's raw input frame into the input resource
// Discrete triggers can arrive either on the frame or as queued events (the
// host's input thread may push asynchronously); both paths merge here
type InputSystem struct {
	world *engine.World

	pendingBlink  bool
	pendingChoice int
}

func NewInputSystem(world *engine.World) engine.System {
	s := &InputSystem{world: world}
	s.Init()
	return s
}

func (s *InputSystem) Init() {
	s.pendingBlink = false
	s.pendingChoice = engine.NoChoice
}

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Priority() int { return constant.PriorityInput }

func (s *InputSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBlinkRequest,
		event.EventCardChoiceRequest,
		event.EventSessionReset,
	}
}

func (s *InputSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionReset:
		s.Init()
	case event.EventBlinkRequest:
		s.pendingBlink = true
	case event.EventCardChoiceRequest:
		if p, ok := ev.Payload.(*event.CardChoiceRequestPayload); ok {
			s.pendingChoice = p.Index
		}
	}
}

func (s *InputSystem) Update() {
	in := s.world.Resource.Input
	frame := in.Frame

	mx := vmath.Clamp(frame.MoveX, -1, 1)
	my := vmath.Clamp(frame.MoveY, -1, 1)

	// Diagonal input must not move faster than cardinal
	mx, my = vmath.ClampMagnitude(mx, my, 1)

	in.MoveX = mx
	in.MoveY = my
	in.Magnitude = vmath.Magnitude(mx, my)

	in.BlinkRequested = frame.Blink || s.pendingBlink

	in.CardChoice = frame.CardChoice
	if in.CardChoice == engine.NoChoice {
		in.CardChoice = s.pendingChoice
	}

	s.pendingBlink = false
	s.pendingChoice = engine.NoChoice
}
