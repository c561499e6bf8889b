package agent

import (
	"fmt"

	"ggpa/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	firstTarget
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// actions.
func NewRandomAgent(rng *rand.Rand) Agent {
	return &randomAgent{rng: rng}
}

func (a *randomAgent) ChooseAction(state game.State) (game.Action, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return nil, fmt.Errorf("random agent: %w", ErrNoActions)
	}
	return actions[a.rng.Intn(len(actions))], nil
}
