package woa

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/kmst/graph"
	"github.com/katalvlaran/kmst/tree"
)

// Whale is one population member: a position per graph node, the membership
// decoded from it and the tree built over the members.
//
// Invariant: exactly k entries of membership are true between updates, and
// they match the tree's node set.
type Whale struct {
	g        *graph.Graph
	position []float64
	member   []bool
	tree     *tree.Tree
	cost     float64
	lb, ub   float64
}

// NewWhale draws an initial whale with the default selection attempt cap of
// 1000 per node. See newWhale.
func NewWhale(g *graph.Graph, lb, ub float64, rng *rand.Rand, k int) (*Whale, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return newWhale(g, lb, ub, rng, k, defaultAttempts(g.NumNodes()))
}

// newWhale draws a uniform position in [lb, ub] for every node, then samples
// node indices until k distinct nodes pass the membership test: a node at
// position x joins when membershipProbability(x) beats a fresh uniform draw,
// otherwise its position is redrawn. The tree is the subset MST over the
// members in selection order.
//
// Errors: ErrInvalidK, ErrInvalidConfig (lb >= ub), ErrAdditionStalled after
// maxAttempts rejected draws.
func newWhale(g *graph.Graph, lb, ub float64, rng *rand.Rand, k, maxAttempts int) (*Whale, error) {
	n := g.NumNodes()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInvalidK, k, n)
	}
	if !(lb < ub) {
		return nil, fmt.Errorf("%w: bounds [%v, %v]", ErrInvalidConfig, lb, ub)
	}

	w := &Whale{
		g:        g,
		position: make([]float64, n),
		member:   make([]bool, n),
		lb:       lb,
		ub:       ub,
	}
	for i := range w.position {
		w.position[i] = uniform(rng, lb, ub)
	}

	picked := make([]string, 0, k)
	rejected := 0
	for len(picked) < k {
		i := rng.Intn(n)
		if w.member[i] {
			continue
		}
		if membershipProbability(w.position[i]) > rng.Float64() {
			w.member[i] = true
			picked = append(picked, g.Name(i))
			continue
		}
		w.position[i] = uniform(rng, lb, ub)
		if rejected++; rejected >= maxAttempts {
			return nil, fmt.Errorf("%w: %d of %d nodes selected after %d rejections",
				ErrAdditionStalled, len(picked), k, rejected)
		}
	}

	w.tree = tree.FromNodes(g, picked, k)
	w.cost = w.tree.Cost(g)

	return w, nil
}

// Len returns the number of coordinates (graph nodes).
func (w *Whale) Len() int { return len(w.position) }

// Position returns coordinate i.
func (w *Whale) Position(i int) float64 { return w.position[i] }

// SetPosition overwrites coordinate i without clamping.
func (w *Whale) SetPosition(i int, v float64) { w.position[i] = v }

// Positions returns a copy of the position vector.
func (w *Whale) Positions() []float64 {
	return append([]float64(nil), w.position...)
}

// InTree reports the decoded membership of node i.
func (w *Whale) InTree(i int) bool { return w.member[i] }

// SetMembership overwrites the decoded membership of node i. The tree is not
// touched; it is synchronized by the optimizer's swap.
func (w *Whale) SetMembership(i int, in bool) { w.member[i] = in }

// Bounds returns the position bounds.
func (w *Whale) Bounds() (lb, ub float64) { return w.lb, w.ub }

// Tree returns the whale's tree. The pointer is live; do not mutate it
// while the whale is part of a running optimizer.
func (w *Whale) Tree() *tree.Tree { return w.tree }

// Cost returns the cached tree cost as of the last swap or refresh.
func (w *Whale) Cost() float64 { return w.cost }

// refresh recomputes the cached cost from the tree.
func (w *Whale) refresh() float64 {
	w.cost = w.tree.Cost(w.g)

	return w.cost
}

// clampAll clamps every coordinate into [lb, ub].
func (w *Whale) clampAll() {
	for i, x := range w.position {
		w.position[i] = clamp(x, w.lb, w.ub)
	}
}

// IndexInTree returns a uniformly random index whose membership is true,
// or -1 when there is none.
func (w *Whale) IndexInTree(rng *rand.Rand) int {
	return pick(rng, w.indices(true, -1))
}

// IndexNotInTree returns a uniformly random index whose membership is false,
// skipping exclude (pass -1 to skip nothing), or -1 when there is none.
func (w *Whale) IndexNotInTree(rng *rand.Rand, exclude int) int {
	return pick(rng, w.indices(false, exclude))
}

// IndexInOtherTree returns the index of a random node that is in this
// whale's tree but not in other. Candidates are drawn from the name-sorted
// member list. When the difference is empty it falls back to IndexInTree.
func (w *Whale) IndexInOtherTree(rng *rand.Rand, other *tree.Tree) int {
	var diff []string
	for _, name := range w.tree.Nodes() {
		if !other.Contains(name) {
			diff = append(diff, name)
		}
	}
	if len(diff) == 0 {
		return w.IndexInTree(rng)
	}
	i, ok := w.g.Index(diff[rng.Intn(len(diff))])
	if !ok {
		return w.IndexInTree(rng)
	}

	return i
}

// indices lists, in ascending order, the nodes whose membership equals in.
func (w *Whale) indices(in bool, exclude int) []int {
	out := make([]int, 0, len(w.member))
	for i, m := range w.member {
		if m == in && i != exclude {
			out = append(out, i)
		}
	}

	return out
}

func pick(rng *rand.Rand, from []int) int {
	if len(from) == 0 {
		return -1
	}

	return from[rng.Intn(len(from))]
}

func defaultAttempts(n int) int {
	return 1000 * n
}
