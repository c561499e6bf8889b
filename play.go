package main

import (
	"fmt"
	"io"
	"time"

	"ggpa/agent"
	"ggpa/engine"
	"ggpa/game"
	"ggpa/searcher"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

type playFlags struct {
	agent       string
	iterations  int
	exploration float64
	duration    time.Duration
	seed        uint64
	scoring     string
	verbose     bool
}

func newPlayCmd() *cobra.Command {
	flags := playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one battle of the configured scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyPlayFlags(cmd, flags)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			return play(cmd.OutOrStdout(), flags.agent)
		},
	}

	cmd.Flags().StringVar(&flags.agent, "agent", "mcts", "agent to play with (mcts, random)")
	cmd.Flags().IntVarP(&flags.iterations, "iterations", "n", searcher.DefaultIterations, "search iterations per decision")
	cmd.Flags().Float64Var(&flags.exploration, "exploration", searcher.DefaultExploration, "UCB exploration parameter")
	cmd.Flags().DurationVar(&flags.duration, "duration", 0, "time budget per decision, 0 for none")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed, 0 to seed from the clock")
	cmd.Flags().StringVar(&flags.scoring, "scoring", "blend", "playout scoring (blend, strict)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "print the search tree after every decision")
	return cmd
}

// applyPlayFlags overrides the loaded config with the flags set on the command line.
func applyPlayFlags(cmd *cobra.Command, flags playFlags) {
	changed := cmd.Flags().Changed
	if changed("iterations") {
		cfg.Search.Iterations = flags.iterations
	}
	if changed("exploration") {
		cfg.Search.Exploration = flags.exploration
	}
	if changed("duration") {
		cfg.Search.Duration = flags.duration
	}
	if changed("seed") {
		cfg.Search.Seed = flags.seed
	}
	if changed("scoring") {
		cfg.Search.Scoring = flags.scoring
	}
	if changed("verbose") {
		cfg.Search.Verbose = flags.verbose
	}
}

func play(out io.Writer, kind string) error {
	seed := cfg.Search.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	battle, err := game.NewBattle(cfg.Scenario, rand.New(rand.NewSource(rng.Uint64())))
	if err != nil {
		return err
	}

	var a agent.Agent
	switch kind {
	case "mcts":
		options := []searcher.Option{
			searcher.WithIterations(cfg.Search.Iterations),
			searcher.WithDuration(cfg.Search.Duration),
			searcher.WithExploration(cfg.Search.Exploration),
			searcher.WithScoreFn(cfg.Search.ScoreFn()),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		}
		if cfg.Search.Verbose {
			options = append(options, searcher.WithVerbose(out))
		}
		a = agent.NewMCTSAgent(searcher.NewMCTS(options...))
	case "random":
		a = agent.NewRandomAgent(rng)
	default:
		return fmt.Errorf("unknown agent %q", kind)
	}

	result, decisions, err := engine.LocalEngine(cfg.Scenario.Name, battle, a).Run()
	if err != nil {
		return err
	}

	for _, decision := range decisions {
		fmt.Fprintf(out, "turn %2d step %3d: %s\n", decision.Turn, decision.Step, decision.Action)
	}
	fmt.Fprintf(out, "%s (seed %d): %s after %d turns, %d/%d hp left, %.0f%% enemy hp removed\n",
		cfg.Scenario.Name, seed, result.Result, result.Turns,
		battle.Player.HP, battle.Player.MaxHP, result.Score*100)
	return nil
}
