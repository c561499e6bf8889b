package agent

import (
	"fmt"

	"ggpa/experiments/metrics"
	"ggpa/game"
	"ggpa/searcher"
)

type mctsAgent struct {
	firstTarget
	mcts *searcher.MCTS
	last metrics.SearchMetric
}

// NewMCTSAgent returns an agent that searches every decision with mcts.
func NewMCTSAgent(mcts *searcher.MCTS) Agent {
	return &mctsAgent{mcts: mcts}
}

func (a *mctsAgent) ChooseAction(state game.State) (game.Action, error) {
	action, metric := a.mcts.FindAction(state)
	a.last = metric
	if action == nil {
		return nil, fmt.Errorf("mcts agent: %w", ErrNoActions)
	}
	return action, nil
}

func (a *mctsAgent) LastSearch() metrics.SearchMetric {
	return a.last
}
