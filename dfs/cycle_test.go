package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dfs"
)

func TestHasCycle(t *testing.T) {
	_, _, err := dfs.HasCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	tree := core.NewGraph()
	_, _ = tree.AddEdge("A", "B", 1)
	_, _ = tree.AddEdge("B", "C", 1)
	_, _ = tree.AddEdge("B", "D", 1)
	ok, cyc, err := dfs.HasCycle(tree)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cyc)

	_, _ = tree.AddEdge("D", "A", 1)
	ok, cyc, err = dfs.HasCycle(tree)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D", "A"}, cyc)
}
