package system

import (
	"testing"

	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
)

func TestInputClampsComponents(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewInputSystem(w)

	f := engine.NewInputFrame()
	f.MoveX, f.MoveY = 5, -5
	w.Resource.Input.Frame = f
	s.Update()

	in := w.Resource.Input
	if in.Magnitude > 1+1e-9 {
		t.Errorf("Expected magnitude clamped to 1, got %f", in.Magnitude)
	}
	if in.MoveX > 1 || in.MoveY < -1 {
		t.Errorf("Expected components in [-1,1], got (%f, %f)", in.MoveX, in.MoveY)
	}
}

func TestQueuedTriggersMergeIntoFrame(t *testing.T) {
	w := newPlayingWorld(1)
	s := NewInputSystem(w)

	s.HandleEvent(event.GameEvent{Type: event.EventBlinkRequest})
	s.HandleEvent(event.GameEvent{
		Type:    event.EventCardChoiceRequest,
		Payload: &event.CardChoiceRequestPayload{Index: 2},
	})

	w.Resource.Input.Frame = engine.NewInputFrame()
	s.Update()

	in := w.Resource.Input
	if !in.BlinkRequested {
		t.Error("Expected queued blink merged into the frame")
	}
	if in.CardChoice != 2 {
		t.Errorf("Expected queued card choice 2, got %d", in.CardChoice)
	}

	// Triggers are one-shot
	w.Resource.Input.Frame = engine.NewInputFrame()
	s.Update()
	if in.BlinkRequested || in.CardChoice != engine.NoChoice {
		t.Error("Expected triggers cleared after one frame")
	}
}
