// Package matrix_test covers Digraph construction, edge mutation and lookup,
// the two edge-count policies, and out-of-range safety.
package matrix_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/digraph/matrix"
	"github.com/stretchr/testify/require"
)

// V is the default vertex count for fixtures in this file.
const V = 5

func newGraph(t *testing.T, n int, opts ...matrix.Option) *matrix.Digraph {
	t.Helper()
	g, err := matrix.NewDigraph(n, opts...)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}

func TestNewDigraph_Shape(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	require.Equal(t, V, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, matrix.EdgeCountTracked, g.Policy())
	for i := 0; i < V; i++ {
		for j := 0; j < V; j++ {
			require.False(t, g.HasEdge(i, j))
			require.Zero(t, g.IsEdge(i, j))
		}
	}
}

func TestNewDigraph_Negative(t *testing.T) {
	t.Parallel()

	g, err := matrix.NewDigraph(-1)
	require.Nil(t, g)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDigraph_Overflow(t *testing.T) {
	t.Parallel()

	// Every n here makes n*n wrap around an int.
	root := int(math.Sqrt(float64(math.MaxInt)))
	for _, n := range []int{math.MaxInt, math.MaxInt / 2, root + 1, 1 << (strconv.IntSize / 2)} {
		g, err := matrix.NewDigraph(n)
		require.Nil(t, g, "n=%d", n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "n=%d", n)
	}
}

func TestNewDigraph_ZeroVertices(t *testing.T) {
	t.Parallel()

	g := newGraph(t, 0)
	require.Equal(t, 0, g.VertexCount())
	require.ErrorIs(t, g.AddEdge(0, 0, 1), matrix.ErrOutOfRange)
	require.Zero(t, g.IsEdge(0, 0))
	require.Equal(t, "", g.String())
}

func TestAddEdge_ThenIsEdge(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	require.NoError(t, g.AddEdge(1, 3, 42))
	require.Equal(t, int64(42), g.IsEdge(1, 3))
	require.True(t, g.HasEdge(1, 3))
	// directed: reverse cell stays empty
	require.False(t, g.HasEdge(3, 1))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_NegativeWeightStored(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	require.NoError(t, g.AddEdge(0, 1, -7))
	require.Equal(t, int64(-7), g.IsEdge(0, 1))
}

func TestAddEdge_SelfLoop(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	require.NoError(t, g.AddEdge(2, 2, 9))
	require.Equal(t, int64(9), g.IsEdge(2, 2))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_ZeroWeightIsPresent(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	require.NoError(t, g.AddEdge(0, 4, 0))

	w, ok := g.Edge(0, 4)
	require.True(t, ok)
	require.Zero(t, w)
	require.Zero(t, g.IsEdge(0, 4))
	require.Equal(t, 1, g.EdgeCount())
}

func TestDelEdge_ThenIsEdge(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	require.NoError(t, g.AddEdge(3, 0, 11))
	require.NoError(t, g.DelEdge(3, 0))
	require.Zero(t, g.IsEdge(3, 0))
	require.False(t, g.HasEdge(3, 0))
	require.Equal(t, 0, g.EdgeCount())
}

func TestOutOfRange_NoStateChange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		source, dest int
	}{
		{"NegativeSource", -1, 0},
		{"NegativeDest", 0, -1},
		{"SourceTooBig", V, 0},
		{"DestTooBig", 0, V},
		{"BothTooBig", V + 3, V + 7},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := newGraph(t, V)
			require.NoError(t, g.AddEdge(1, 2, 5))
			before := g.String()

			require.ErrorIs(t, g.AddEdge(tc.source, tc.dest, 99), matrix.ErrOutOfRange)
			require.ErrorIs(t, g.DelEdge(tc.source, tc.dest), matrix.ErrOutOfRange)
			require.Zero(t, g.IsEdge(tc.source, tc.dest))
			require.False(t, g.HasEdge(tc.source, tc.dest))

			require.Equal(t, before, g.String())
			require.Equal(t, 1, g.EdgeCount())
		})
	}
}

func TestOutOfRange_ErrorCarriesCoordinates(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	err := g.AddEdge(7, 1, 3)
	require.EqualError(t, err, "Digraph.AddEdge(7,1): matrix: index out of range")
}

func TestEdgeCount_Tracked(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)

	// adding twice on the same cell replaces the weight, counts once
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 8))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, int64(8), g.IsEdge(0, 1))

	// deleting an absent edge is a no-op for the counter
	require.NoError(t, g.DelEdge(4, 4))
	require.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.DelEdge(0, 1))
	require.NoError(t, g.DelEdge(0, 1))
	require.Equal(t, 0, g.EdgeCount())
}

func TestEdgeCount_Legacy(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V, matrix.WithLegacyEdgeCount())
	require.Equal(t, matrix.EdgeCountLegacy, g.Policy())

	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.Equal(t, 2, g.EdgeCount(), "legacy counter increments on every valid add")

	require.NoError(t, g.DelEdge(0, 1))
	require.NoError(t, g.DelEdge(0, 1))
	require.NoError(t, g.DelEdge(2, 3))
	require.Equal(t, -1, g.EdgeCount(), "legacy counter decrements on every valid delete")

	// invalid calls never touch the counter, regardless of policy
	require.Error(t, g.AddEdge(V, V, 1))
	require.Equal(t, -1, g.EdgeCount())
}

func TestResetEdges(t *testing.T) {
	t.Parallel()

	t.Run("Tracked", func(t *testing.T) {
		t.Parallel()
		g := newGraph(t, V)
		require.NoError(t, g.AddEdge(0, 1, 1))
		require.NoError(t, g.AddEdge(1, 2, 2))
		g.ResetEdges()
		require.Equal(t, V, g.VertexCount())
		require.Equal(t, 0, g.EdgeCount())
		require.False(t, g.HasEdge(0, 1))
		require.False(t, g.HasEdge(1, 2))
	})

	t.Run("Legacy", func(t *testing.T) {
		t.Parallel()
		g := newGraph(t, V, matrix.WithLegacyEdgeCount())
		require.NoError(t, g.AddEdge(0, 1, 1))
		g.ResetEdges()
		require.Equal(t, 1, g.EdgeCount(), "legacy reset leaves the counter alone")
		require.Zero(t, g.IsEdge(0, 1))
	})
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	g := newGraph(t, V)
	require.NoError(t, g.AddEdge(2, 4, 1))
	require.NoError(t, g.AddEdge(2, 0, 0))
	require.NoError(t, g.AddEdge(2, 2, 5))
	require.NoError(t, g.AddEdge(1, 3, 1))

	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4}, nbrs)

	nbrs, err = g.Neighbors(4)
	require.NoError(t, err)
	require.Empty(t, nbrs)

	_, err = g.Neighbors(V)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	g := newGraph(t, 3, matrix.WithLegacyEdgeCount())
	require.NoError(t, g.AddEdge(0, 1, 10))

	c := g.Clone()
	require.Equal(t, g.String(), c.String())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())
	require.Equal(t, g.Policy(), c.Policy())

	require.NoError(t, c.AddEdge(1, 2, 4))
	require.False(t, g.HasEdge(1, 2))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
}

func TestString(t *testing.T) {
	t.Parallel()

	g := newGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddEdge(2, 1, 4))
	require.NoError(t, g.AddEdge(1, 1, 0))

	want := "[., 10, 3]\n[., 0, .]\n[., 4, .]\n"
	require.Equal(t, want, g.String())
}

func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var g *matrix.Digraph
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, matrix.DefaultEdgeCountPolicy, g.Policy())
	require.ErrorIs(t, g.AddEdge(0, 0, 1), matrix.ErrNilGraph)
	require.ErrorIs(t, g.DelEdge(0, 0), matrix.ErrNilGraph)
	require.Zero(t, g.IsEdge(0, 0))
	require.Nil(t, g.Clone())
	_, err := g.Neighbors(0)
	require.ErrorIs(t, err, matrix.ErrNilGraph)
	require.NotPanics(t, g.ResetEdges)
}

func TestWithEdgeCountPolicy_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithEdgeCountPolicy(matrix.EdgeCountPolicy(42)) })
	require.Equal(t, "tracked", matrix.EdgeCountTracked.String())
	require.Equal(t, "legacy", matrix.EdgeCountLegacy.String())
	require.Equal(t, "unknown", matrix.EdgeCountPolicy(42).String())
}
