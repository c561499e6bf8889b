package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCB(t *testing.T) {
	t.Run("computing UCB value", func(t *testing.T) {
		got := ucb(0.4, 100, 10, 0.5)

		expected := 0.4 + 0.5*math.Sqrt(math.Log(100.0/10.0))
		require.InDelta(t, expected, got, 0.0001, "Should compute mean + c*sqrt(ln(N/n))")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		require.Panics(t, func() {
			ucb(0.4, 10, 0, 0.5)
		}, "Should panic when n is 0")
	})

	t.Run("no bonus when child visits equal parent visits", func(t *testing.T) {
		got := ucb(0.4, 7, 7, 0.5)

		require.Equal(t, 0.4, got, "ln(1) should add no exploration bonus")
	})

	t.Run("no bonus and no NaN when child visits exceed parent visits", func(t *testing.T) {
		got := ucb(0.4, 3, 7, 0.5)

		require.False(t, math.IsNaN(got), "Ratio below 1 should not produce NaN")
		require.Equal(t, 0.4, got, "Ratio below 1 should add no exploration bonus")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		score1 := ucb(0.5, 100, 10, 0.5)
		score2 := ucb(0.5, 100, 20, 0.5)

		require.Greater(t, score1, score2, "More child visits should decrease exploration term")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := ucb(0.5, 100, 10, 0.5)
		score2 := ucb(0.5, 1000, 10, 0.5)

		require.Greater(t, score2, score1, "More parent visits should increase exploration term")
	})

	t.Run("zero exploration is pure exploitation", func(t *testing.T) {
		require.Equal(t, 0.3, ucb(0.3, 100, 1, 0), "c=0 should return the mean")
	})
}
