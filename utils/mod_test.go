package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "First match should win")
	require.Equal(t, -1, FindIndex([]string{"a"}, "z"))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestRemoveAt(t *testing.T) {
	require.Equal(t, []int{1, 3}, RemoveAt([]int{1, 2, 3}, 1))
	require.Equal(t, []int{2, 3}, RemoveAt([]int{1, 2, 3}, 0))
	require.Empty(t, RemoveAt([]int{1}, 0))
}
