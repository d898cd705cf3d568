package system

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/status"
	"github.com/aposine/monsoon/upgrade"
)

// SessionSystem drives the session lifecycle:
// Countdown -> Playing <-> CardSelection, Playing -> Death
// It owns score accrual, the card-pause timer, and the single score submit
// at death. Death is detected by reading player HP directly so the
// transition lands on the same tick as the killing hit
type SessionSystem struct {
	world *engine.World

	// scoreFrac accumulates fractional survival score between whole points
	scoreFrac float64

	// submitted guards the one-shot score submit per session
	submitted bool

	statState *status.AtomicString
	statScore *atomic.Int64
}

func NewSessionSystem(world *engine.World) engine.System {
	s := &SessionSystem{
		world:     world,
		statState: world.Resource.Status.Strings.Get("session.state"),
		statScore: world.Resource.Status.Ints.Get("session.score"),
	}
	s.Init()
	return s
}

// Init starts a fresh session in Countdown with a new session identity
func (s *SessionSystem) Init() {
	sess := s.world.Resource.Session
	sess.State = core.StateCountdown
	sess.SessionID = uuid.NewString()
	sess.Score = 0
	sess.CardTimer = 0
	sess.CountdownRemaining = constant.CountdownDuration.Seconds()

	s.world.Resource.Upgrade.Ledger.Reset()
	s.world.Resource.Upgrade.Selector.Clear()

	s.scoreFrac = 0
	s.submitted = false
	s.statState.Store(sess.State.String())
	s.statScore.Store(0)
}

func (s *SessionSystem) Name() string { return "session" }

func (s *SessionSystem) Priority() int { return constant.PrioritySession }

func (s *SessionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventSessionReset,
	}
}

func (s *SessionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionReset:
		s.Init()
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			s.world.Resource.Session.Score += int64(p.Points)
			s.statScore.Store(s.world.Resource.Session.Score)
			s.world.PushEvent(event.EventHapticTrigger, &event.HapticTriggerPayload{
				Intensity: constant.HapticEnemyKill,
			})
		}
	}
}

func (s *SessionSystem) Update() {
	sess := s.world.Resource.Session
	dt := s.world.Resource.Time.DeltaTime.Seconds()

	switch sess.State {
	case core.StateCountdown:
		sess.CountdownRemaining -= dt
		if sess.CountdownRemaining <= 0 {
			sess.CountdownRemaining = 0
			s.transition(core.StatePlaying)
		}

	case core.StatePlaying:
		s.accrueSurvivalScore(dt)

		if s.playerDead() {
			s.transition(core.StateDeath)
			s.submitScore()
			return
		}

		sess.CardTimer += dt
		if sess.CardTimer >= constant.CardInterval.Seconds() {
			sess.CardTimer = 0
			if _, err := s.world.Resource.Upgrade.Selector.RequestSelection(); err != nil {
				// Every card maxed: skip the pause and keep playing
				if !errors.Is(err, upgrade.ErrNoEligible) {
					return
				}
			} else {
				s.transition(core.StateCardSelection)
			}
		}

	case core.StateCardSelection:
		choice := s.world.Resource.Input.CardChoice
		if choice == engine.NoChoice {
			return
		}
		card, err := s.world.Resource.Upgrade.Selector.Commit(choice)
		if err != nil {
			// Out-of-range pick leaves the offer standing
			return
		}
		if card == upgrade.CardVigor {
			s.applyVigor()
		}
		s.transition(core.StatePlaying)

	case core.StateDeath:
		// Terminal until the host pushes EventSessionReset
	}
}

// accrueSurvivalScore converts playing time into whole survival points
func (s *SessionSystem) accrueSurvivalScore(dt float64) {
	sess := s.world.Resource.Session
	s.scoreFrac += dt * constant.SurvivalScorePerSecond
	for s.scoreFrac >= 1 {
		s.scoreFrac--
		sess.Score++
	}
	s.statScore.Store(sess.Score)
}

func (s *SessionSystem) playerDead() bool {
	player, ok := s.world.Component.Player.Get(s.world.Resource.Player.Entity)
	return ok && player.HP <= 0
}

// applyVigor raises max HP and heals one point immediately
func (s *SessionSystem) applyVigor() {
	playerEnt := s.world.Resource.Player.Entity
	player, ok := s.world.Component.Player.Get(playerEnt)
	if !ok {
		return
	}
	player.MaxHP = constant.PlayerMaxHP + s.world.Resource.Upgrade.Ledger.MaxHPBonus()
	if player.HP < player.MaxHP {
		player.HP++
	}
	s.world.Component.Player.Set(playerEnt, player)
}

// submitScore emits the one-shot result event; practice sessions never submit
func (s *SessionSystem) submitScore() {
	sess := s.world.Resource.Session
	if s.submitted || sess.IsPractice {
		return
	}
	s.submitted = true

	s.world.PushEvent(event.EventScoreSubmit, &event.ScoreSubmitPayload{
		SessionID:      sess.SessionID,
		SurvivalTimeMs: int64(s.world.Resource.Difficulty.SurvivalTime * 1000),
		Score:          sess.Score,
	})
}

func (s *SessionSystem) transition(to core.SessionState) {
	sess := s.world.Resource.Session
	if sess.State == to {
		return
	}
	from := sess.State
	sess.State = to
	s.statState.Store(to.String())

	s.world.PushEvent(event.EventStateChanged, &event.StateChangedPayload{
		From: from,
		To:   to,
	})
}
