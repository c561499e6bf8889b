package searcher

import (
	"testing"

	"ggpa/game"

	"github.com/stretchr/testify/require"
)

func finished(outcome game.Outcome, score, health float64) *mockState {
	s := newMockState(1, act("a"))
	s.outcomes["a"] = outcome
	s.score = score
	s.health = health
	s.Step(act("a"))
	return s
}

func TestBlendedScore(t *testing.T) {
	t.Run("win scores exactly 1", func(t *testing.T) {
		require.Equal(t, 1.0, BlendedScore(finished(game.Win, 0, 0)))
	})

	t.Run("loss falls through to the blend", func(t *testing.T) {
		require.InDelta(t, (0.6+0.3)/3, BlendedScore(finished(game.Loss, 0.6, 0.3)), 1e-12)
	})

	t.Run("draw falls through to the blend", func(t *testing.T) {
		require.InDelta(t, (0.2+0.9)/3, BlendedScore(finished(game.Draw, 0.2, 0.9)), 1e-12)
	})

	t.Run("stays within [0,1] for fitness and health in [0,1]", func(t *testing.T) {
		for _, outcome := range []game.Outcome{game.Win, game.Loss, game.Draw} {
			for _, score := range []float64{0, 0.25, 0.5, 1} {
				for _, health := range []float64{0, 0.5, 1} {
					got := BlendedScore(finished(outcome, score, health))
					require.GreaterOrEqual(t, got, 0.0)
					require.LessOrEqual(t, got, 1.0)
				}
			}
		}
	})

	t.Run("win outranks any non-win", func(t *testing.T) {
		require.Greater(t, BlendedScore(finished(game.Win, 0, 0)), BlendedScore(finished(game.Draw, 1, 1)))
	})
}

func TestStrictScore(t *testing.T) {
	require.Equal(t, 0.0, StrictScore(finished(game.Loss, 1, 1)), "Loss should score 0")
	require.Equal(t, 1.0, StrictScore(finished(game.Win, 0, 0)), "Win should score 1")
	require.InDelta(t, (0.5+0.5)/3, StrictScore(finished(game.Draw, 0.5, 0.5)), 1e-12, "Draw should blend")
}

func TestScoreByName(t *testing.T) {
	for _, name := range []string{"", "blend", "strict"} {
		fn, err := ScoreByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)
	}

	_, err := ScoreByName("greedy")
	require.Error(t, err, "Unknown names should be rejected")
}
