package engine

import (
	"time"
)

// InputFrame is the host-normalized input for one tick
// MoveX/MoveY form the movement vector (each in [-1,1]; the input system
// clamps diagonal magnitude to 1); Blink and CardChoice are discrete triggers
type InputFrame struct {
	MoveX, MoveY float64
	Blink        bool
	CardChoice   int // 0..2 during card selection, NoChoice otherwise
}

// NoChoice is the CardChoice value when no card pick is pending
const NoChoice = -1

// NewInputFrame returns an empty frame with no pending choice
func NewInputFrame() InputFrame {
	return InputFrame{CardChoice: NoChoice}
}

// Game drives the world with one fully synchronous update per tick
// The host owns the loop and supplies a variable delta time; the simulation
// performs no I/O and spawns no goroutines
type Game struct {
	World  *World
	router *EventRouter
}

// NewGame wraps a fully wired world; systems must be added before the first Step
func NewGame(w *World) *Game {
	g := &Game{
		World:  w,
		router: NewEventRouter(w.Resource.Event.Queue),
	}
	for _, s := range w.Systems() {
		g.router.Register(s)
	}
	return g
}

// Step advances the simulation by dt
// Tick order: time bookkeeping, event dispatch, then systems by priority
// (input, player, enemy, bullet, collision, spawn, difficulty, session,
// bridge, cull)
func (g *Game) Step(dt time.Duration, in InputFrame) {
	tr := g.World.Resource.Time
	tr.DeltaTime = dt
	tr.FrameNumber++

	g.World.Resource.Input.Frame = in

	g.router.DispatchAll()

	for _, s := range g.World.Systems() {
		s.Update()
	}
}
