package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestPlayCommand(t *testing.T) {
	out := execute(t, "play", "--log-level", "error", "-n", "10", "--seed", "3", "-v")

	require.Contains(t, out, "starter (seed 3)")
	require.Contains(t, out, "EndTurn")
	require.Equal(t, 10, cfg.Search.Iterations, "Flags should override the config")
	require.True(t, cfg.Search.Verbose)
}

func TestExperimentCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
experiment:
  name: cli
  agents:
    - {id: 1, kind: random}
    - {id: 2, kind: mcts, iterations: 5}
`), 0644))

	out := execute(t, "experiment", "--config", path, "--log-level", "error", "-g", "2", "-o", dir)

	require.Contains(t, out, "winrate")
	require.Contains(t, out, filepath.Join(dir, "cli"))
	require.Equal(t, 2, cfg.Experiment.Games)
}
