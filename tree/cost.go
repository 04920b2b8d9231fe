package tree

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/kmst/graph"
)

// Cost returns the normalized cost of the tree, computing it on first use.
// Repeated calls return the cached value.
func (t *Tree) Cost(g *graph.Graph) float64 {
	if t.cost.ok {
		return t.cost.value
	}
	t.cost = memo{value: t.CostOf(g, t.edges), ok: true}

	return t.cost.value
}

// CostOf computes (Σ weights) / Normalize for an arbitrary edge list without
// touching the cost cache. A zero normalizer yields 0 for an empty sum and
// +Inf otherwise.
func (t *Tree) CostOf(g *graph.Graph, edges []graph.Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}
	norm := t.Normalize(g)
	if norm == 0 {
		if sum == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return sum / norm
}

// Normalize returns the sum of the k-1 largest input-edge weights of g
// (all of them when g has fewer), computing it on first use.
//
// Implementation keeps a bounded min-heap of size k-1 while scanning the
// upper triangle, so memory stays O(k).
// Complexity: O(n² log k).
func (t *Tree) Normalize(g *graph.Graph) float64 {
	if t.norm.ok {
		return t.norm.value
	}

	limit := t.k - 1
	var sum float64
	if limit > 0 {
		h := make(minFloatHeap, 0, limit+1)
		for _, w := range g.OriginalWeights() {
			heap.Push(&h, w)
			if h.Len() > limit {
				heap.Pop(&h)
			}
		}
		for _, w := range h {
			sum += w
		}
	}
	t.norm = memo{value: sum, ok: true}

	return sum
}

// minFloatHeap implements heap.Interface as a min-heap of float64; the
// smallest retained weight is evicted first.
type minFloatHeap []float64

func (h minFloatHeap) Len() int           { return len(h) }
func (h minFloatHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minFloatHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minFloatHeap) Push(x any) { *h = append(*h, x.(float64)) }

func (h *minFloatHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
