package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ggpa/game"
	"ggpa/searcher"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		got, err := Load("")

		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), got)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
search:
  iterations: 250
  exploration: 1.2
  duration: 50ms
  scoring: strict
scenario:
  name: cultist
  max_turns: 10
  player:
    hp: 30
    energy: 3
    hand_size: 5
    deck: [Strike, Strike, Defend, Cleave]
  enemies:
    - name: Cultist
      hp: 48
      intents:
        - {kind: buff, amount: 3, weight: 1}
        - {kind: attack, amount: 6, weight: 2}
  cards:
    - {name: Cleave, cost: 1, damage: 8}
log:
  level: debug
`)

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 250, got.Search.Iterations)
		require.Equal(t, 1.2, got.Search.Exploration)
		require.Equal(t, 50*time.Millisecond, got.Search.Duration)
		require.Equal(t, "cultist", got.Scenario.Name)
		require.Len(t, got.Scenario.Enemies, 1)
		require.Equal(t, game.IntentBuff, got.Scenario.Enemies[0].Intents[0].Kind)
		require.Equal(t, "debug", got.Log.Level)
		require.Equal(t, DefaultConfig().Experiment, got.Experiment, "Untouched sections keep their defaults")
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "search:\n  iterations: 250\n")
		t.Setenv("GGPA_ITERATIONS", "42")
		t.Setenv("GGPA_SEED", "7")
		t.Setenv("GGPA_LOG_LEVEL", "warn")

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 42, got.Search.Iterations)
		require.Equal(t, uint64(7), got.Search.Seed)
		require.Equal(t, "warn", got.Log.Level)
	})

	t.Run("rejecting invalid files", func(t *testing.T) {
		bad := map[string]string{
			"malformed yaml":      "search: [",
			"negative iterations": "search:\n  iterations: -1\n",
			"no search budget":    "search:\n  iterations: 0\n",
			"unknown scoring":     "search:\n  scoring: lenient\n",
			"unknown log level":   "log:\n  level: loud\n",
			"unknown deck card":   "scenario:\n  player:\n    hp: 10\n    energy: 3\n    hand_size: 5\n    deck: [Demon Form]\n",
			"no games":            "experiment:\n  games: 0\n",
			"duplicate agent ids": "experiment:\n  agents:\n    - {id: 1, kind: random}\n    - {id: 1, kind: random}\n",
			"unknown agent kind":  "experiment:\n  agents:\n    - {id: 1, kind: greedy}\n",
			"mcts agent budget":   "experiment:\n  agents:\n    - {id: 1, kind: mcts}\n",
		}
		for name, content := range bad {
			t.Run(name, func(t *testing.T) {
				_, err := Load(writeConfig(t, content))
				require.Error(t, err)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})
}

func TestSearchConfigScoreFn(t *testing.T) {
	lost := &game.Battle{
		Player:   game.Combatant{HP: 0, MaxHP: 10},
		Enemies:  []*game.Enemy{{Combatant: game.Combatant{HP: 5, MaxHP: 10}}},
		MaxTurns: 5,
	}

	require.InDelta(t, searcher.BlendedScore(lost), SearchConfig{Scoring: "blend"}.ScoreFn()(lost), 1e-12)
	require.Equal(t, 0.0, SearchConfig{Scoring: "strict"}.ScoreFn()(lost), "Strict scoring gives losses nothing")
}
