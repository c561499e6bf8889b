package agent

import (
	"errors"
	"testing"

	"ggpa/game"
	"ggpa/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBattle(t *testing.T, seed uint64) *game.Battle {
	t.Helper()
	b, err := game.NewBattle(game.DefaultScenario(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return b
}

func lostBattle() *game.Battle {
	return &game.Battle{
		Player:   game.Combatant{Name: "Player", HP: 0, MaxHP: 10},
		Turn:     1,
		MaxTurns: 5,
	}
}

func TestTargets(t *testing.T) {
	agents := map[string]Agent{
		"mcts":   NewMCTSAgent(searcher.NewMCTS(searcher.WithIterations(1))),
		"random": NewRandomAgent(rand.New(rand.NewSource(1))),
	}

	for name, a := range agents {
		t.Run(name+" picks the first agent target", func(t *testing.T) {
			first := &game.Combatant{Name: "first"}
			second := &game.Combatant{Name: "second"}

			require.Equal(t, first, a.ChooseAgentTarget(nil, "enemies", []*game.Combatant{first, second}))
			require.Nil(t, a.ChooseAgentTarget(nil, "enemies", nil))
		})

		t.Run(name+" picks the first card target", func(t *testing.T) {
			cards := []game.Card{game.Bash, game.Strike}

			require.Equal(t, game.Bash, a.ChooseCardTarget(nil, "hand", cards))
			require.Equal(t, game.Card{}, a.ChooseCardTarget(nil, "hand", nil))
		})
	}
}

func TestMCTSAgent(t *testing.T) {
	t.Run("choosing a legal action", func(t *testing.T) {
		battle := newBattle(t, 3)
		a := NewMCTSAgent(searcher.NewMCTS(searcher.WithIterations(50), searcher.WithSeed(3), searcher.WithMetrics()))

		got, err := a.ChooseAction(battle)

		require.NoError(t, err)
		keys := []game.ActionKey{}
		for _, action := range battle.Actions() {
			keys = append(keys, action.Key())
		}
		require.Contains(t, keys, got.Key())
		require.Equal(t, 50, a.(Reporter).LastSearch().Episodes, "Agent should keep the last search metrics")
	})

	t.Run("failing on a finished battle", func(t *testing.T) {
		a := NewMCTSAgent(searcher.NewMCTS(searcher.WithIterations(5)))

		_, err := a.ChooseAction(lostBattle())

		require.True(t, errors.Is(err, ErrNoActions))
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("choosing a legal action", func(t *testing.T) {
		battle := newBattle(t, 4)
		a := NewRandomAgent(rand.New(rand.NewSource(4)))

		for i := 0; i < 20; i++ {
			got, err := a.ChooseAction(battle)
			require.NoError(t, err)
			require.Contains(t, battle.Actions(), got)
		}
	})

	t.Run("failing on a finished battle", func(t *testing.T) {
		_, err := NewRandomAgent(rand.New(rand.NewSource(5))).ChooseAction(lostBattle())

		require.ErrorIs(t, err, ErrNoActions)
	})
}
