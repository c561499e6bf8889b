package agent

import (
	"errors"

	"ggpa/experiments/metrics"
	"ggpa/game"
)

var ErrNoActions = errors.New("no legal actions")

// Agent makes every decision a battle asks of the player.
type Agent interface {
	// ChooseAction returns one legal action of state. It only fails when state
	// has no legal action at all.
	ChooseAction(state game.State) (game.Action, error)
	ChooseAgentTarget(state game.State, listName string, candidates []*game.Combatant) *game.Combatant
	ChooseCardTarget(state game.State, listName string, candidates []game.Card) game.Card
}

// Reporter is implemented by agents that collect search metrics for their last
// decision.
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

// firstTarget serves the target requests of every agent here: the scenarios
// have a single valid target.
type firstTarget struct{}

func (firstTarget) ChooseAgentTarget(state game.State, listName string, candidates []*game.Combatant) *game.Combatant {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

func (firstTarget) ChooseCardTarget(state game.State, listName string, candidates []game.Card) game.Card {
	if len(candidates) == 0 {
		return game.Card{}
	}
	return candidates[0]
}
