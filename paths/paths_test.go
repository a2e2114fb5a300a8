package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PL-play/kgraph/core"
	"github.com/PL-play/kgraph/paths"
)

func buildPath4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(false, false)
	for _, id := range []int{0, 1, 2, 3} {
		require.NoError(t, g.AddVertexWithID(id, nil))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))
	return g
}

func TestSingleSourcePath_BFSThenPathTo(t *testing.T) {
	g := buildPath4(t)
	parent, ok := paths.SingleSourcePath(g, 0, paths.BFS)
	require.True(t, ok)

	path, ok := paths.PathTo(parent, 3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestSingleSourcePath_UnknownSource(t *testing.T) {
	g := buildPath4(t)
	_, ok := paths.SingleSourcePath(g, 99, paths.BFS)
	assert.False(t, ok)
}

func TestPathTo_UnreachableReturnsFalse(t *testing.T) {
	g := core.NewGraph(false, false)
	for _, id := range []int{0, 1} {
		require.NoError(t, g.AddVertexWithID(id, nil))
	}
	parent, ok := paths.SingleSourcePath(g, 0, paths.BFS)
	require.True(t, ok)
	_, ok = paths.PathTo(parent, 1)
	assert.False(t, ok)
}

func TestHasPath_AndOnePath(t *testing.T) {
	g := buildPath4(t)
	assert.True(t, paths.HasPath(g, 0, 3))
	assert.False(t, paths.HasPath(g, 0, 99))

	p, ok := paths.OnePath(g, 0, 3)
	require.True(t, ok)
	assert.Equal(t, 0, p[0])
	assert.Equal(t, 3, p[len(p)-1])
}

func TestIsBipartite_Triangle(t *testing.T) {
	g := core.NewGraph(false, true)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, g.AddVertexWithID(id, nil))
	}
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 0, 1))

	assert.False(t, paths.IsBipartite(g))
}

func TestIsBipartite_EvenCycle(t *testing.T) {
	g := core.NewGraph(false, false)
	for _, id := range []int{0, 1, 2, 3} {
		require.NoError(t, g.AddVertexWithID(id, nil))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))
	require.NoError(t, g.AddEdge(3, 0, 0))

	assert.True(t, paths.IsBipartite(g))
	side0, side1 := paths.Colors(g)
	assert.Len(t, side0, 2)
	assert.Len(t, side1, 2)
}

func TestIsBipartite_PanicsOnDirected(t *testing.T) {
	g := core.NewGraph(true, false)
	assert.Panics(t, func() { paths.IsBipartite(g) })
}

func TestEnumerateCyclePaths_Triangle(t *testing.T) {
	g := core.NewGraph(false, false)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, g.AddVertexWithID(id, nil))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))

	cycles := paths.EnumerateCyclePaths(g)
	require.Len(t, cycles, 1)
	cycle := cycles[0]
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
	assert.GreaterOrEqual(t, len(cycle), 4)
}

func TestEnumerateCyclePaths_TwoDisjointBranchesNoFalseCycle(t *testing.T) {
	// Regression for the inverted-membership bug: vertex 0 has two
	// separate neighbors 1 and 2, neither forming a cycle back to 0. A
	// buggy "on-path" test can falsely treat 1 as still on-path when
	// exploring 2's branch.
	g := core.NewGraph(false, false)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, g.AddVertexWithID(id, nil))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))

	cycles := paths.EnumerateCyclePaths(g)
	assert.Empty(t, cycles)
}

func TestEnumerateCyclePaths_Directed(t *testing.T) {
	g := core.NewGraph(true, false)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, g.AddVertexWithID(id, nil))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))

	cycles := paths.EnumerateCyclePaths(g)
	require.Len(t, cycles, 1)
}
