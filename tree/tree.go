package tree

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/kmst/graph"
)

// memo is a memoized float with an explicit "set" flag.
type memo struct {
	value float64
	ok    bool
}

// Neighbor is a one-swap alternative of a Tree: NewNode replaces RemoveNode
// and the structure is repaired by subset Prim.
type Neighbor struct {
	Edges      []graph.Edge
	Cost       float64
	NewNode    string
	RemoveNode string
}

// Tree is a candidate k-node subtree. It is mutable and not safe for
// concurrent use; each search agent owns one.
type Tree struct {
	k        int
	nodes    map[string]struct{}
	edges    []graph.Edge
	cost     memo
	norm     memo
	neighbor *Neighbor // nil when no neighbor is cached
}

// New creates a Tree from explicit edges and node names. Duplicate names
// collapse; edges are copied. Nothing is validated (see IsConnected).
func New(edges []graph.Edge, nodes []string, k int) *Tree {
	t := &Tree{
		k:     k,
		nodes: make(map[string]struct{}, len(nodes)),
		edges: append([]graph.Edge(nil), edges...),
	}
	for _, n := range nodes {
		t.nodes[n] = struct{}{}
	}

	return t
}

// FromNodes builds the subset MST over names (in the given order, the first
// name seeds Prim) and wraps it in a Tree.
// Complexity: O(m² log m).
func FromNodes(g *graph.Graph, names []string, k int) *Tree {
	edges := g.ConstructSubtreeMST(graph.CandidatesOf(names), nil, k)

	return New(edges, names, k)
}

// Generate draws k distinct nodes uniformly at random from g and builds their
// subset MST.
//
// Errors: ErrInvalidK when k < 1 or k > g.NumNodes().
func Generate(g *graph.Graph, k int, rng *rand.Rand) (*Tree, error) {
	if k < 1 || k > g.NumNodes() {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInvalidK, k, g.NumNodes())
	}

	pool := g.Nodes()
	picked := make([]string, 0, k)
	var i, j int
	for i = 0; i < k; i++ {
		j = rng.Intn(len(pool))
		picked = append(picked, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}

	return FromNodes(g, picked, k), nil
}

// K returns the target node count.
func (t *Tree) K() int { return t.k }

// Len returns the current number of member nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Contains reports whether name is a member.
func (t *Tree) Contains(name string) bool {
	_, ok := t.nodes[name]

	return ok
}

// Nodes returns the member names sorted lexicographically.
func (t *Tree) Nodes() []string {
	out := make([]string, 0, len(t.nodes))
	for n := range t.nodes {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Edges returns a copy of the edge list.
func (t *Tree) Edges() []graph.Edge {
	return append([]graph.Edge(nil), t.edges...)
}

// Clone returns a deep copy, caches included.
func (t *Tree) Clone() *Tree {
	c := New(t.edges, nil, t.k)
	for n := range t.nodes {
		c.nodes[n] = struct{}{}
	}
	c.cost, c.norm = t.cost, t.norm
	if t.neighbor != nil {
		nb := *t.neighbor
		nb.Edges = append([]graph.Edge(nil), t.neighbor.Edges...)
		c.neighbor = &nb
	}

	return c
}
