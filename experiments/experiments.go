package experiments

import (
	"fmt"

	"ggpa/agent"
	"ggpa/engine"
	"ggpa/experiments/metrics"
	"ggpa/game"
	"ggpa/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Experiment struct {
	Name      string
	Games     int // Per agent
	OutputDir string
	Seed      uint64
	Scenario  game.Scenario
	Agents    []metrics.AgentConfig
}

// Result is what a finished run produced and where its records were stored.
type Result struct {
	RunID     string
	Dir       string
	Battles   []metrics.BattleRecord
	Decisions []metrics.DecisionRecord
	Summaries []metrics.Summary
}

// Run plays Games battles per agent. Game i deals the same battle to every
// agent so results are directly comparable.
func Run(exp Experiment) (Result, error) {
	result := Result{RunID: uuid.NewString()}

	log.Info().Msgf("starting %s experiment %s...", exp.Name, result.RunID)

	count := 0
	for ai, config := range exp.Agents {
		log.Info().Msgf("starting agent %d of %d: %+v", ai+1, len(exp.Agents), config)

		for i := 0; i < exp.Games; i++ {
			seed := exp.Seed + uint64(i)
			battle, decisions, err := runBattle(exp.Scenario, config, seed)
			if err != nil {
				return result, fmt.Errorf("agent %d game %d: %w", config.ID, i+1, err)
			}

			count++
			result.Battles = append(result.Battles, metrics.BattleRecord{
				ID:           count,
				Agent:        config.ID,
				Seed:         seed,
				BattleMetric: battle,
			})
			for _, decision := range decisions {
				result.Decisions = append(result.Decisions, metrics.DecisionRecord{
					Battle:         count,
					Agent:          config.ID,
					DecisionMetric: decision,
				})
			}

			log.Debug().Msgf("agent %d game %d of %d: %s", config.ID, i+1, exp.Games, battle.Result)
		}
		log.Info().Msgf("completed agent %d of %d", ai+1, len(exp.Agents))
	}

	result.Summaries = metrics.Summarize(result.Battles)
	for _, s := range result.Summaries {
		log.Info().Msgf("agent %d: %d/%d wins (%.2f), health %.2f±%.2f, score %.2f, %.1f turns",
			s.Agent, s.Wins, s.Battles, s.WinRate, s.MeanHealth, s.StdHealth, s.MeanScore, s.MeanTurns)
	}

	dir, err := store(exp, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	log.Info().Msgf("completed %s experiment, records stored in %s", exp.Name, dir)
	return result, nil
}

func store(exp Experiment, result Result) (string, error) {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name, result.RunID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteBattleRecords(result.Battles); err != nil {
		return "", fmt.Errorf("failed to store battle records: %w", err)
	}
	if err := writer.WriteDecisionRecords(result.Decisions); err != nil {
		return "", fmt.Errorf("failed to store decision records: %w", err)
	}
	return writer.Dir(), nil
}

func runBattle(scenario game.Scenario, config metrics.AgentConfig, seed uint64) (metrics.BattleMetric, []metrics.DecisionMetric, error) {
	battle, err := game.NewBattle(scenario, rand.New(rand.NewSource(seed)))
	if err != nil {
		return metrics.BattleMetric{}, nil, err
	}
	a, err := CreateAgent(config, seed)
	if err != nil {
		return metrics.BattleMetric{}, nil, err
	}
	return engine.LocalEngine(scenario.Name, battle, a).Run()
}

// CreateAgent builds the agent an AgentConfig describes. Its random stream is
// independent of the battle dealt from the same seed.
func CreateAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	rng := rand.New(rand.NewSource(seed ^ 0x9e3779b97f4a7c15))

	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(rng), nil
	case "mcts":
		score, err := searcher.ScoreByName(config.Scoring)
		if err != nil {
			return nil, err
		}
		if config.Iterations <= 0 && config.Duration <= 0 {
			return nil, fmt.Errorf("mcts agent %d needs iterations or a duration", config.ID)
		}
		mcts := searcher.NewMCTS(
			searcher.WithIterations(config.Iterations),
			searcher.WithDuration(config.Duration),
			searcher.WithExploration(config.Exploration),
			searcher.WithScoreFn(score),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		)
		return agent.NewMCTSAgent(mcts), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
