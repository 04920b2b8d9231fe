package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmst/graph"
	"github.com/katalvlaran/kmst/tree"
)

// sixNodeGraph: A-B=3, A-C=5, A-D=1, B-E=9, C-D=7, C-E=7, C-F=1, D-F=4.
// Normalization for k=3 is 9+7 = 16.
func sixNodeGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New([]graph.Input{
		{From: "A", To: "B", Weight: 3},
		{From: "A", To: "C", Weight: 5},
		{From: "A", To: "D", Weight: 1},
		{From: "B", To: "E", Weight: 9},
		{From: "C", To: "D", Weight: 7},
		{From: "C", To: "E", Weight: 7},
		{From: "C", To: "F", Weight: 1},
		{From: "D", To: "F", Weight: 4},
	})
	require.NoError(t, err)

	return g
}

// abcTree is {A,B,C} with edges A-B(3), B-C(5); weight sum 8.
func abcTree() *tree.Tree {
	return tree.New([]graph.Edge{
		{From: "A", To: "B", Weight: 3},
		{From: "B", To: "C", Weight: 5},
	}, []string{"A", "B", "C"}, 3)
}

func TestNormalize_SumOfLargestOriginalWeights(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := abcTree()
	assert.Equal(t, 16.0, tr.Normalize(g))
	assert.Equal(t, 16.0, tr.Normalize(g), "cached value is stable")

	// k-1 = 4 largest: 9, 7, 7, 5
	four := tree.New(nil, nil, 5)
	assert.Equal(t, 28.0, four.Normalize(g))

	// fewer input edges than k-1: sum all (3+5+1+9+7+7+1+4 = 37)
	all := tree.New(nil, nil, 20)
	assert.Equal(t, 37.0, all.Normalize(g))

	assert.Equal(t, 0.0, tree.New(nil, []string{"A"}, 1).Normalize(g))
}

func TestCost_NormalizedAndIdempotent(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := abcTree()
	first := tr.Cost(g)
	assert.InDelta(t, 0.5, first, 1e-12)
	assert.Equal(t, first, tr.Cost(g))
}

func TestCost_SingleNodeIsZero(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := tree.New(nil, []string{"C"}, 1)
	assert.Equal(t, 0.0, tr.Cost(g))
	assert.True(t, tr.IsConnected(g))
}

func TestNeighbor_AndRecoverSolution(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := abcTree()

	nb, err := tr.Neighbor(g, "D", "A")
	require.NoError(t, err)
	assert.Equal(t, "D", nb.NewNode)
	assert.Equal(t, "A", nb.RemoveNode)
	// kept B-C(5), Prim adds C-D(7): 12/16
	assert.InDelta(t, 0.75, nb.Cost, 1e-12)
	assert.Equal(t, []graph.Edge{
		{From: "B", To: "C", Weight: 5},
		{From: "C", To: "D", Weight: 7},
	}, nb.Edges)
	assert.True(t, tr.HasNeighbor())

	assert.True(t, tr.RecoverSolution())
	assert.False(t, tr.HasNeighbor())
	assert.Equal(t, []string{"B", "C", "D"}, tr.Nodes())
	assert.Len(t, tr.Edges(), 2)
	assert.InDelta(t, 0.75, tr.Cost(g), 1e-12)

	assert.False(t, tr.RecoverSolution(), "second recover without neighbor is a no-op")
	assert.Equal(t, []string{"B", "C", "D"}, tr.Nodes())
}

func TestNeighbor_Cache(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := abcTree()

	a, err := tr.Neighbor(g, "D", "A")
	require.NoError(t, err)
	b, err := tr.Neighbor(g, "D", "A")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := tr.Neighbor(g, "F", "C")
	require.NoError(t, err)
	assert.Equal(t, "F", c.NewNode)

	tr.ClearNeighbor()
	assert.False(t, tr.RecoverSolution())
	assert.Equal(t, []string{"A", "B", "C"}, tr.Nodes())
}

func TestNeighbor_ContractViolations(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := abcTree()
	before := tr.Edges()

	_, err := tr.Neighbor(g, "B", "A")
	assert.ErrorIs(t, err, tree.ErrNodePresent)
	_, err = tr.Neighbor(g, "D", "E")
	assert.ErrorIs(t, err, tree.ErrNodeAbsent)

	assert.False(t, tr.RecoverSolution())
	assert.Equal(t, before, tr.Edges())
	assert.InDelta(t, 0.5, tr.Cost(g), 1e-12)
}

// Dropping every edge of an inner node leaves a forest Prim cannot rejoin.
func TestNeighbor_InnerRemovalLeavesForest(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := tree.New([]graph.Edge{
		{From: "B", To: "A", Weight: 3},
		{From: "A", To: "D", Weight: 1},
		{From: "D", To: "F", Weight: 4},
		{From: "F", To: "C", Weight: 1},
	}, []string{"B", "A", "D", "F", "C"}, 5)
	require.True(t, tr.IsConnected(g))

	nb, err := tr.Neighbor(g, "E", "D")
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{
		{From: "B", To: "A", Weight: 3},
		{From: "F", To: "C", Weight: 1},
		{From: "C", To: "E", Weight: 7},
	}, nb.Edges)

	require.True(t, tr.RecoverSolution())
	assert.False(t, tr.IsConnected(g))
}

func TestIsConnected(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)

	valid := tree.New([]graph.Edge{
		{From: "A", To: "D", Weight: 1},
		{From: "D", To: "F", Weight: 4},
	}, []string{"A", "D", "F"}, 3)
	assert.True(t, valid.IsConnected(g))

	// B-C is not an input edge
	assert.False(t, abcTree().IsConnected(g))

	missing := tree.New([]graph.Edge{
		{From: "A", To: "D", Weight: 1},
		{From: "D", To: "F", Weight: 4},
	}, []string{"A", "D", "C"}, 3)
	assert.False(t, missing.IsConnected(g))

	short := tree.New([]graph.Edge{{From: "A", To: "D", Weight: 1}}, []string{"A", "D", "F"}, 3)
	assert.False(t, short.IsConnected(g))

	// right counts, but a repeated edge leaves C isolated
	isolated := tree.New([]graph.Edge{
		{From: "A", To: "D", Weight: 1},
		{From: "D", To: "A", Weight: 1},
	}, []string{"A", "D", "C"}, 3)
	assert.False(t, isolated.IsConnected(g))

	// four nodes, three edges, two components (A-D-A cycle + C-F)
	split := tree.New([]graph.Edge{
		{From: "A", To: "D", Weight: 1},
		{From: "D", To: "A", Weight: 1},
		{From: "C", To: "F", Weight: 1},
	}, []string{"A", "D", "C", "F"}, 4)
	assert.False(t, split.IsConnected(g))

	assert.True(t, tree.New(nil, nil, 0).IsConnected(g))
}

func TestFromNodes(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := tree.FromNodes(g, []string{"E", "D"}, 2)
	require.Len(t, tr.Edges(), 1)
	assert.Equal(t, 144.0, tr.Edges()[0].Weight)
	assert.False(t, tr.IsConnected(g), "D-E is priced, not an input edge")
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)

	_, err := tree.Generate(g, 0, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, tree.ErrInvalidK)
	_, err = tree.Generate(g, 7, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, tree.ErrInvalidK)

	a, err := tree.Generate(g, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := tree.Generate(g, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, 4, a.Len())
	assert.Len(t, a.Edges(), 3)
	assert.Equal(t, a.Nodes(), b.Nodes(), "same seed, same subset")
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	g := sixNodeGraph(t)
	tr := abcTree()
	_, err := tr.Neighbor(g, "D", "A")
	require.NoError(t, err)

	c := tr.Clone()
	require.True(t, c.RecoverSolution())
	assert.Equal(t, []string{"A", "B", "C"}, tr.Nodes())
	assert.True(t, tr.HasNeighbor())
	assert.Equal(t, []string{"B", "C", "D"}, c.Nodes())
}
