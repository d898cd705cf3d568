package system

import (
	"math"

	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/status"
)

// DifficultySystem accrues survival time while playing and derives humidity
// from it in fixed steps. Humidity never decreases within a session
type DifficultySystem struct {
	world *engine.World

	statHumidity *status.AtomicFloat
	statSurvival *status.AtomicFloat
}

func NewDifficultySystem(world *engine.World) engine.System {
	s := &DifficultySystem{
		world:        world,
		statHumidity: world.Resource.Status.Floats.Get("difficulty.humidity"),
		statSurvival: world.Resource.Status.Floats.Get("difficulty.survival_s"),
	}
	s.Init()
	return s
}

func (s *DifficultySystem) Init() {
	diff := s.world.Resource.Difficulty
	diff.SurvivalTime = 0
	diff.Humidity = constant.HumidityBase
	s.statHumidity.Set(diff.Humidity)
	s.statSurvival.Set(0)
}

func (s *DifficultySystem) Name() string { return "difficulty" }

func (s *DifficultySystem) Priority() int { return constant.PriorityDifficulty }

func (s *DifficultySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSessionReset}
}

func (s *DifficultySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventSessionReset {
		s.Init()
	}
}

func (s *DifficultySystem) Update() {
	res := s.world.Resource
	if !res.Session.Running() {
		return
	}

	diff := res.Difficulty
	diff.SurvivalTime += res.Time.DeltaTime.Seconds()

	steps := math.Floor(diff.SurvivalTime / constant.HumidityRampInterval)
	diff.Humidity = constant.HumidityBase + steps*constant.HumidityRampStep

	s.statHumidity.Set(diff.Humidity)
	s.statSurvival.Set(diff.SurvivalTime)
}
