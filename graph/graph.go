package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kmst/matrix"
)

// Graph is the immutable, complete cost matrix over the input node set.
//
// Invariants:
//   - index is a bijection between node names and [0, n).
//   - cells is a flattened n×n matrix, symmetric: cells[i*n+j] == cells[j*n+i].
//   - the diagonal is (0, original).
type Graph struct {
	index    map[string]int // node name → dense index
	names    []string       // dense index → node name
	cells    []Cell         // row-major n×n
	n        int
	diameter float64
}

// New builds a Graph from an undirected edge list.
//
// Steps:
//  1. Validate records and assign indices in first-seen order.
//  2. Build the raw matrix (+Inf off-diagonal, 0 diagonal) and overlay every
//     input edge symmetrically (last record wins).
//  3. Close the raw matrix with the CostModel and price every non-original pair.
//
// Errors: ErrEmptyGraph, ErrEmptyNode, ErrSelfLoop, ErrInvalidWeight
// (wrapped with the offending record number, 1-based).
//
// Complexity: O(E + n³) time, O(n²) memory.
func New(edges []Input) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{index: make(map[string]int)}
	for i, e := range edges {
		if err := validateInput(e); err != nil {
			return nil, fmt.Errorf("graph: record %d (%q,%q): %w", i+1, e.From, e.To, err)
		}
		g.intern(e.From)
		g.intern(e.To)
	}
	g.n = len(g.names)

	raw, err := matrix.NewDistanceDense(g.n)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	original := make([]bool, g.n*g.n)
	var i int
	for i = 0; i < g.n; i++ {
		original[i*g.n+i] = true
	}
	for _, e := range edges {
		u, v := g.index[e.From], g.index[e.To]
		// in range and non-NaN after validateInput
		_ = raw.Set(u, v, e.Weight)
		_ = raw.Set(v, u, e.Weight)
		original[u*g.n+v] = true
		original[v*g.n+u] = true
	}

	cm, err := NewCostModel(raw)
	if err != nil {
		return nil, err
	}
	if err = cm.Adjust(raw, original); err != nil {
		return nil, err
	}
	g.diameter = cm.Diameter()

	g.cells = make([]Cell, g.n*g.n)
	var j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			w, _ := raw.At(i, j)
			g.cells[i*g.n+j] = Cell{Weight: w, Original: original[i*g.n+j]}
		}
	}

	return g, nil
}

// validateInput checks a single edge record.
func validateInput(e Input) error {
	if e.From == "" || e.To == "" {
		return ErrEmptyNode
	}
	if e.From == e.To {
		return ErrSelfLoop
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
		return ErrInvalidWeight
	}

	return nil
}

// intern assigns the next dense index to name if it is new.
func (g *Graph) intern(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.names)
	g.names = append(g.names, name)
}

// NumNodes returns n, the number of distinct nodes.
func (g *Graph) NumNodes() int { return g.n }

// Nodes returns the node names in index order (a fresh slice).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Name returns the node name at index i. i must be in [0, n).
func (g *Graph) Name(i int) string { return g.names[i] }

// Index returns the dense index of name and whether it exists.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]

	return i, ok
}

// Diameter returns the largest finite shortest-path distance of the input graph.
func (g *Graph) Diameter() float64 { return g.diameter }

// EdgeAt returns the cell at (i, j). Out-of-range indices yield an
// unreachable, non-original cell (+Inf).
// Complexity: O(1).
func (g *Graph) EdgeAt(i, j int) Cell {
	if i < 0 || j < 0 || i >= g.n || j >= g.n {
		return Cell{Weight: math.Inf(1)}
	}

	return g.cells[i*g.n+j]
}

// Edge returns the cell joining two named nodes.
//
// This is the hot-path accessor used by Prim and the tree entity; it does
// not report unknown names separately. Callers pass names taken from the
// graph itself; an unknown name yields an unreachable, non-original cell.
// Complexity: O(1).
func (g *Graph) Edge(a, b string) Cell {
	i, ok := g.index[a]
	if !ok {
		return Cell{Weight: math.Inf(1)}
	}
	j, ok := g.index[b]
	if !ok {
		return Cell{Weight: math.Inf(1)}
	}

	return g.cells[i*g.n+j]
}

// OriginalWeights returns the weights of all input edges, one per unordered
// pair (upper triangle, diagonal excluded), in row-major order.
// Complexity: O(n²).
func (g *Graph) OriginalWeights() []float64 {
	out := make([]float64, 0, g.n)
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if c := g.cells[i*g.n+j]; c.Original {
				out = append(out, c.Weight)
			}
		}
	}

	return out
}
