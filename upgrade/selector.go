package upgrade

import (
	"errors"

	"github.com/aposine/monsoon/constant"
	"github.com/aposine/monsoon/vmath"
)

var (
	// ErrNoEligible means every card is maxed; the caller must skip the selection pause
	ErrNoEligible = errors.New("upgrade: no eligible cards remain")

	// ErrNoSelection means Commit was called with no active choice set (caller error)
	ErrNoSelection = errors.New("upgrade: no active selection")

	// ErrBadChoice means the committed index is outside the choice set (caller error)
	ErrBadChoice = errors.New("upgrade: choice index out of range")
)

// Selector draws card choices and commits the player's pick into the ledger
// It is the only mutator of ledger levels
type Selector struct {
	ledger  *Ledger
	rng     *vmath.FastRand
	choices []Card // nil when no selection is active
}

// NewSelector creates a selector over the given ledger
func NewSelector(ledger *Ledger, rng *vmath.FastRand) *Selector {
	return &Selector{ledger: ledger, rng: rng}
}

// RequestSelection builds the eligible set (level < max), shuffles, and
// activates up to three distinct choices drawn without replacement
// Returns ErrNoEligible with no active set if every card is maxed
func (s *Selector) RequestSelection() ([]Card, error) {
	eligible := make([]Card, 0, int(cardCount))
	for _, c := range Cards() {
		if s.ledger.Level(c) < MaxLevel(c) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligible
	}

	// Fisher-Yates
	for i := len(eligible) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}

	n := constant.CardChoiceCount
	if len(eligible) < n {
		n = len(eligible)
	}
	s.choices = eligible[:n]

	out := make([]Card, n)
	copy(out, s.choices)
	return out, nil
}

// Active reports whether a selection is awaiting a commit
func (s *Selector) Active() bool {
	return s.choices != nil
}

// Choices returns the active choice set, nil if none
func (s *Selector) Choices() []Card {
	if s.choices == nil {
		return nil
	}
	out := make([]Card, len(s.choices))
	copy(out, s.choices)
	return out
}

// Commit increments the chosen card's level by one and clears the choice set
// Calling without an active set or with an out-of-range index is a caller
// error, signaled, never silently ignored
func (s *Selector) Commit(index int) (Card, error) {
	if s.choices == nil {
		return 0, ErrNoSelection
	}
	if index < 0 || index >= len(s.choices) {
		return 0, ErrBadChoice
	}
	c := s.choices[index]
	s.ledger.increment(c)
	s.choices = nil
	return c, nil
}

// Clear abandons the active choice set without committing
func (s *Selector) Clear() {
	s.choices = nil
}
