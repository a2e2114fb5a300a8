package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_AutoAllocatesDenseIDs(t *testing.T) {
	g := NewGraph(false, false)
	for i := 0; i < 5; i++ {
		id, err := g.AddVertex(nil)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.VertexIDs())
}

func TestAddVertex_ReusesFreedIDAtCursor(t *testing.T) {
	g := NewGraph(false, false)
	require.NoError(t, errOnly(g.AddVertexWithID(0, nil)))
	require.NoError(t, errOnly(g.AddVertexWithID(1, nil)))
	require.NoError(t, errOnly(g.AddVertexWithID(2, nil)))
	require.True(t, g.RemoveVertex(1))

	id, err := g.AddVertex(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, id, "smallest free id at or above the cursor should be reused")
}

func TestAddVertexWithID_RejectsDuplicateWithoutMutating(t *testing.T) {
	g := NewGraph(false, false)
	require.NoError(t, errOnly(g.AddVertexWithID(3, "first")))

	err := g.AddVertexWithID(3, "second")
	require.ErrorIs(t, err, ErrVertexExists)

	payload, _ := g.Payload(3)
	assert.Equal(t, "first", payload, "failed add-vertex-with-id must not mutate existing payload")
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddVertexWithID_RejectsNegativeID(t *testing.T) {
	g := NewGraph(false, false)
	err := g.AddVertexWithID(-1, nil)
	require.ErrorIs(t, err, ErrNegativeID)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := NewGraph(false, false)
	require.NoError(t, errOnly(g.AddVertexWithID(0, nil)))
	err := g.AddEdge(0, 0, 0)
	require.ErrorIs(t, err, ErrSelfLoop)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_RejectsMissingEndpoints(t *testing.T) {
	g := NewGraph(true, false)
	require.NoError(t, errOnly(g.AddVertexWithID(0, nil)))

	err := g.AddEdge(0, 1, 0)
	require.ErrorIs(t, err, ErrToMissing)

	err = g.AddEdge(1, 0, 0)
	require.ErrorIs(t, err, ErrFromMissing)

	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_UndirectedMirrorsWithEqualWeight(t *testing.T) {
	g := NewGraph(false, true)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 7))

	e01, ok := g.GetEdge(0, 1)
	require.True(t, ok)
	e10, ok := g.GetEdge(1, 0)
	require.True(t, ok)
	assert.Equal(t, e01.Weight, e10.Weight)
	assert.Equal(t, 1, g.EdgeCount(), "edge-count counts each logical edge once")
}

func TestAddEdge_IdempotentOnDuplicate(t *testing.T) {
	g := NewGraph(true, true)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 99)) // duplicate, different weight ignored

	e, _ := g.GetEdge(0, 1)
	assert.Equal(t, 5, e.Weight, "duplicate add-edge must not change the existing weight")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.OutDegreeOf(0))
}

func TestAddEdge_UnweightedGraphStoresZero(t *testing.T) {
	g := NewGraph(false, false)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 42))
	e, _ := g.GetEdge(0, 1)
	assert.Equal(t, 0, e.Weight)
}

func TestDirectedDegreeBookkeeping(t *testing.T) {
	g := NewGraph(true, false)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	assert.Equal(t, 2, g.OutDegreeOf(0))
	assert.Equal(t, 0, g.InDegreeOf(0))
	assert.Equal(t, 1, g.OutDegreeOf(1))
	assert.Equal(t, 1, g.InDegreeOf(1))
	assert.Equal(t, 0, g.OutDegreeOf(2))
	assert.Equal(t, 2, g.InDegreeOf(2))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRemoveVertex_DecrementsEdgeCountByDegree(t *testing.T) {
	t.Run("undirected", func(t *testing.T) {
		g := NewGraph(false, false)
		for _, id := range []int{0, 1, 2} {
			require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
		}
		require.NoError(t, g.AddEdge(0, 1, 0))
		require.NoError(t, g.AddEdge(0, 2, 0))
		require.NoError(t, g.AddEdge(1, 2, 0))
		require.Equal(t, 3, g.EdgeCount())

		degree0 := g.DegreeOf(0)
		require.True(t, g.RemoveVertex(0))
		assert.Equal(t, 3-degree0, g.EdgeCount())
		assert.False(t, g.HasVertex(0))
		assert.False(t, g.IsConnected(1, 0))
		assert.False(t, g.IsConnected(2, 0))
	})

	t.Run("directed", func(t *testing.T) {
		g := NewGraph(true, false)
		for _, id := range []int{0, 1, 2} {
			require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
		}
		require.NoError(t, g.AddEdge(0, 1, 0))
		require.NoError(t, g.AddEdge(2, 0, 0))
		require.NoError(t, g.AddEdge(1, 2, 0))
		require.Equal(t, 3, g.EdgeCount())

		degree0 := g.InDegreeOf(0) + g.OutDegreeOf(0)
		require.True(t, g.RemoveVertex(0))
		assert.Equal(t, 3-degree0, g.EdgeCount())
	})
}

func TestRemoveVertex_UnknownIDIsNoop(t *testing.T) {
	g := NewGraph(false, false)
	assert.False(t, g.RemoveVertex(42))
}

func TestRemoveEdge(t *testing.T) {
	g := NewGraph(false, false)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))

	assert.Equal(t, 1, g.RemoveEdge(0, 1))
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.IsConnected(0, 1))
	assert.False(t, g.IsConnected(1, 0))
	assert.Equal(t, 0, g.RemoveEdge(0, 1), "removing an absent edge reports zero")
}

func TestSetWeight(t *testing.T) {
	g := NewGraph(false, true)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.SetWeight(0, 1, 9))

	e01, _ := g.GetEdge(0, 1)
	e10, _ := g.GetEdge(1, 0)
	assert.Equal(t, 9, e01.Weight)
	assert.Equal(t, 9, e10.Weight)

	err := g.SetWeight(1, 2, 1)
	assert.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestSetWeight_RequiresWeightedGraph(t *testing.T) {
	g := NewGraph(false, false)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	err := g.SetWeight(0, 1, 5)
	assert.ErrorIs(t, err, ErrUnweighted)
}

func TestDegreeOf_PanicsOnDirectedGraph(t *testing.T) {
	g := NewGraph(true, false)
	require.NoError(t, errOnly(g.AddVertexWithID(0, nil)))
	assert.Panics(t, func() { g.DegreeOf(0) })
}

func TestReverse_UndirectedIsIdentity(t *testing.T) {
	g := NewGraph(false, true)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 4))
	assert.Same(t, g, g.Reverse())
}

func TestReverse_DirectedFlipsEveryEdge(t *testing.T) {
	g := NewGraph(true, true)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 5))

	r := g.Reverse()
	assert.Equal(t, g.VertexCount(), r.VertexCount())
	assert.True(t, r.IsConnected(1, 0))
	assert.True(t, r.IsConnected(2, 1))
	assert.False(t, r.IsConnected(0, 1))

	e, ok := r.GetEdge(1, 0)
	require.True(t, ok)
	assert.Equal(t, 2, e.Weight)
}

func TestReverse_ReverseReverseIsomorphicForDirected(t *testing.T) {
	g := NewGraph(true, true)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 0, 1))

	rr := g.Reverse().Reverse()
	assert.ElementsMatch(t, g.VertexIDs(), rr.VertexIDs())
	assert.ElementsMatch(t, g.Edges(), rr.Edges())
}

func TestCloneEdges_IsIndependent(t *testing.T) {
	g := NewGraph(false, false)
	for _, id := range []int{0, 1} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))

	c := g.CloneEdges()
	c.RemoveEdge(0, 1)

	assert.Equal(t, 0, c.EdgeCount())
	assert.Equal(t, 1, g.EdgeCount(), "clone mutation must not affect the original")
}

func TestAdjacent_ReturnsSortedCopy(t *testing.T) {
	g := NewGraph(true, false)
	for _, id := range []int{0, 1, 2} {
		require.NoError(t, errOnly(g.AddVertexWithID(id, nil)))
	}
	require.NoError(t, g.AddEdge(0, 2, 0))
	require.NoError(t, g.AddEdge(0, 1, 0))

	adj := g.Adjacent(0)
	require.Len(t, adj, 2)
	assert.Equal(t, 1, adj[0].To)
	assert.Equal(t, 2, adj[1].To)
}

func errOnly(err error) error { return err }
