package engine

import (
	"fmt"
	"time"

	"ggpa/agent"
	"ggpa/experiments/metrics"
	"ggpa/game"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Scenario string
	Battle   *game.Battle
	Agent    agent.Agent
}

func LocalEngine(scenario string, battle *game.Battle, a agent.Agent) *Engine {
	if battle == nil || a == nil {
		panic("engine needs a battle and an agent")
	}
	return &Engine{
		Scenario: scenario,
		Battle:   battle,
		Agent:    a,
	}
}

// Run asks the agent for decisions until the battle ends or MaxDecisions is
// reached.
func (e *Engine) Run() (metrics.BattleMetric, []metrics.DecisionMetric, error) {
	start := time.Now()
	decisions := []metrics.DecisionMetric{}

	log.Debug().Msgf("battle %s started: %s", e.Scenario, e.Battle)

	step := 1
	for !e.Battle.Ended() && step <= MaxDecisions {
		action, err := e.Agent.ChooseAction(e.Battle)
		if err != nil {
			return metrics.BattleMetric{}, decisions, fmt.Errorf("decision %d: %w", step, err)
		}

		decision := metrics.DecisionMetric{
			Step:   step,
			Turn:   e.Battle.Turn,
			Action: action.String(),
		}
		if reporter, ok := e.Agent.(agent.Reporter); ok {
			decision.SearchMetric = reporter.LastSearch()
		}
		decisions = append(decisions, decision)

		if err := e.apply(action); err != nil {
			return metrics.BattleMetric{}, decisions, fmt.Errorf("decision %d: %w", step, err)
		}
		log.Debug().Msgf("turn %d: played %s -> %s", decision.Turn, action, e.Battle)
		step++
	}

	if !e.Battle.Ended() {
		log.Warn().Msgf("battle %s stopped after %d decisions without ending", e.Scenario, MaxDecisions)
	}

	end := time.Now()
	battle := metrics.BattleMetric{
		Scenario:  e.Scenario,
		Result:    e.Battle.Result().String(),
		Turns:     min(e.Battle.Turn, e.Battle.MaxTurns),
		Decisions: len(decisions),
		Health:    e.Battle.Health(),
		Score:     e.Battle.Score(),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	log.Info().Msgf("battle %s over: %s after %d turns with %d/%d hp", e.Scenario, battle.Result, battle.Turns, e.Battle.Player.HP, e.Battle.Player.MaxHP)
	return battle, decisions, nil
}

// apply resolves an action, asking the agent for a target when the card needs one.
func (e *Engine) apply(action game.Action) error {
	play, ok := action.(game.PlayCard)
	if !ok || !play.Card.Targeted() {
		return e.Battle.Apply(action, nil)
	}

	target := e.Agent.ChooseAgentTarget(e.Battle, "enemies", e.Battle.AliveEnemies())
	if target == nil {
		return fmt.Errorf("no target chosen for %s", play.Card.Name)
	}
	return e.Battle.Apply(action, target)
}
