package searcher

import (
	"fmt"

	"ggpa/game"
)

// ScoreFn turns a finished playout into a comparable value. Decisive wins must
// score highest.
type ScoreFn func(state game.State) float64

// BlendedScore returns Win for a won battle and otherwise blends the
// simulation's fitness with the remaining health. Losses are blended too, so a
// close loss still ranks above a crushing one.
func BlendedScore(state game.State) float64 {
	if state.Ended() && state.Result() == game.Win {
		return Win
	}
	return (state.Score() + state.Health()) / 3
}

// StrictScore is BlendedScore except that every loss scores 0.
func StrictScore(state game.State) float64 {
	if state.Ended() && state.Result() == game.Loss {
		return 0
	}
	return BlendedScore(state)
}

// ScoreByName resolves the scoring names accepted in configuration.
func ScoreByName(name string) (ScoreFn, error) {
	switch name {
	case "", "blend":
		return BlendedScore, nil
	case "strict":
		return StrictScore, nil
	default:
		return nil, fmt.Errorf("unknown scoring %q", name)
	}
}
