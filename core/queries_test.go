package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kambohq/kambograph/core"
)

// buildPath constructs an undirected path V0—V1—…—V(n-1).
func buildPath(t *testing.T, n int) *core.SimpleGraph[int, core.Unweighted] {
	t.Helper()

	g := core.NewUndirected[int]()
	for v := 0; v < n; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for v := 1; v < n; v++ {
		require.NoError(t, g.AddEdge(v-1, v))
	}

	return g
}

// TestOrder_MatchesVertices verifies Order against the Vertices snapshot
// across mutations.
func TestOrder_MatchesVertices(t *testing.T) {
	g := buildPath(t, 5)
	assert.Equal(t, len(g.Vertices()), core.Order[int](g))
	assert.Equal(t, 5, core.Order[int](g))

	require.NoError(t, g.RemoveVertex(0))
	assert.Equal(t, len(g.Vertices()), core.Order[int](g))
	assert.Equal(t, 4, core.Order[int](g))
}

// TestEdgeCount_HalvesUndirectedDoubleCounting verifies that the symmetric
// representation is halved back to the number of distinct unordered pairs.
func TestEdgeCount_HalvesUndirectedDoubleCounting(t *testing.T) {
	g := buildPath(t, 4) // edges: 0—1, 1—2, 2—3
	assert.Equal(t, 3, core.EdgeCount[int](g))

	require.NoError(t, g.RemoveEdge(1, 2))
	assert.Equal(t, 2, core.EdgeCount[int](g))
}

// TestEdgeCount_DirectedSumsOutDegrees verifies the directed counting rule,
// including antiparallel pairs.
func TestEdgeCount_DirectedSumsOutDegrees(t *testing.T) {
	g := core.NewDirected[string]()
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("b", "c"))

	assert.Equal(t, 3, core.EdgeCount[string](g))
}

// TestIsolatedVertices_Detection verifies that a vertex is isolated until
// any edge touches it, and isolated again once its last edge is removed.
func TestIsolatedVertices_Detection(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	assert.ElementsMatch(t, []int{1, 2}, core.IsolatedVertices[int](g))
	assert.True(t, core.HasIsolatedVertex[int](g))

	require.NoError(t, g.AddEdge(1, 2))
	assert.Empty(t, core.IsolatedVertices[int](g))
	assert.False(t, core.HasIsolatedVertex[int](g))

	require.NoError(t, g.RemoveEdge(1, 2))
	assert.ElementsMatch(t, []int{1, 2}, core.IsolatedVertices[int](g))
}

// TestVertices_SnapshotIsStable verifies that a returned snapshot survives
// later mutation of the graph.
func TestVertices_SnapshotIsStable(t *testing.T) {
	g := buildPath(t, 3)
	snapshot := g.Vertices()
	require.Len(t, snapshot, 3)

	require.NoError(t, g.RemoveVertex(2))
	assert.Len(t, snapshot, 3, "snapshot must not track mutation")
	assert.Len(t, g.Vertices(), 2)
}

// TestNeighbors_AbsentVertex verifies structural absence signaling.
func TestNeighbors_AbsentVertex(t *testing.T) {
	g := core.NewDirected[int]()
	nbrs, ok := g.Neighbors(99)
	assert.False(t, ok)
	assert.Nil(t, nbrs)
}
