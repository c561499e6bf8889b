package game

import "golang.org/x/exp/rand"

// ActionKey identifies a logical action independently of the state instance
// that produced it, so the same card played from two resampled states maps to
// the same key.
type ActionKey string

type Action interface {
	Key() ActionKey
	String() string
}

// Outcome is the terminal result from the deciding side's perspective. It is
// only meaningful once the state has ended.
type Outcome int

const (
	Loss Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// State is everything a searcher needs from a simulation. Step mutates the
// state in place; Resample returns an independent copy whose hidden
// randomness (draw order, future enemy rolls) is re-drawn from rng.
type State interface {
	Actions() []Action
	Step(Action)
	Ended() bool
	Result() Outcome
	Score() float64  // Fitness signal in [0, 1]
	Health() float64 // Deciding side's remaining health in [0, 1]
	Resample(rng *rand.Rand) State
}
