package main

import (
	"fmt"

	"ggpa/experiments"

	"github.com/spf13/cobra"
)

func newExperimentCmd() *cobra.Command {
	var games int
	var outputDir string

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play the configured agents against the scenario and store the records as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("games") {
				cfg.Experiment.Games = games
			}
			if cmd.Flags().Changed("output") {
				cfg.Experiment.OutputDir = outputDir
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			result, err := experiments.Run(experiments.Experiment{
				Name:      cfg.Experiment.Name,
				Games:     cfg.Experiment.Games,
				OutputDir: cfg.Experiment.OutputDir,
				Seed:      cfg.Experiment.Seed,
				Scenario:  cfg.Scenario,
				Agents:    cfg.Experiment.Agents,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %8s %8s %8s %8s %8s\n", "agent", "battles", "winrate", "health", "score", "turns")
			for _, s := range result.Summaries {
				fmt.Fprintf(out, "%-6d %8d %8.2f %8.2f %8.2f %8.1f\n", s.Agent, s.Battles, s.WinRate, s.MeanHealth, s.MeanScore, s.MeanTurns)
			}
			fmt.Fprintf(out, "records: %s\n", result.Dir)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "g", 0, "battles per agent")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for the CSV records")
	return cmd
}
