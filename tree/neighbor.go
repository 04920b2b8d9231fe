package tree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kmst/graph"
)

// Neighbor computes (or returns from cache) the tree obtained by swapping
// removeNode out and newNode in.
//
// Steps:
//  1. Cache hit on the same (newNode, removeNode) pair → return it.
//  2. Reject newNode already present (ErrNodePresent) or removeNode absent
//     (ErrNodeAbsent).
//  3. Keep every current edge that does not touch removeNode; their
//     endpoints start In, every other node of the new set starts Out.
//  4. Repair with graph.ConstructSubtreeMST, candidates in graph index order.
//
// All edges incident to removeNode are dropped, so removing an inner node
// leaves a forest that Prim cannot rejoin; the result is then shorter than
// k-1 and IsConnected reports false.
//
// The result is cached until RecoverSolution or ClearNeighbor.
func (t *Tree) Neighbor(g *graph.Graph, newNode, removeNode string) (Neighbor, error) {
	if nb := t.neighbor; nb != nil && nb.NewNode == newNode && nb.RemoveNode == removeNode {
		return *nb, nil
	}
	if t.Contains(newNode) {
		return Neighbor{}, fmt.Errorf("%w: %q", ErrNodePresent, newNode)
	}
	if !t.Contains(removeNode) {
		return Neighbor{}, fmt.Errorf("%w: %q", ErrNodeAbsent, removeNode)
	}

	retained := make([]graph.Edge, 0, len(t.edges))
	spanned := make(map[string]bool, len(t.nodes))
	for _, e := range t.edges {
		if e.From == removeNode || e.To == removeNode {
			continue
		}
		retained = append(retained, e)
		spanned[e.From] = true
		spanned[e.To] = true
	}

	cands := make([]graph.Candidate, 0, len(t.nodes))
	for n := range t.nodes {
		if n != removeNode {
			cands = append(cands, graph.Candidate{Name: n, In: spanned[n]})
		}
	}
	cands = append(cands, graph.Candidate{Name: newNode})
	sortByIndex(g, cands)

	edges := g.ConstructSubtreeMST(cands, retained, t.k)
	t.neighbor = &Neighbor{
		Edges:      edges,
		Cost:       t.CostOf(g, edges),
		NewNode:    newNode,
		RemoveNode: removeNode,
	}

	return *t.neighbor, nil
}

// RecoverSolution commits the cached neighbor as the current tree state and
// clears the cache. It returns false, changing nothing, when no neighbor is
// cached.
func (t *Tree) RecoverSolution() bool {
	nb := t.neighbor
	if nb == nil {
		return false
	}

	t.edges = nb.Edges
	t.cost = memo{value: nb.Cost, ok: true}
	t.nodes[nb.NewNode] = struct{}{}
	delete(t.nodes, nb.RemoveNode)
	t.neighbor = nil

	return true
}

// ClearNeighbor drops the cached neighbor, if any.
func (t *Tree) ClearNeighbor() { t.neighbor = nil }

// HasNeighbor reports whether a neighbor is cached.
func (t *Tree) HasNeighbor() bool { return t.neighbor != nil }

// sortByIndex orders candidates by graph index; unknown names go last by name.
func sortByIndex(g *graph.Graph, cands []graph.Candidate) {
	sort.Slice(cands, func(a, b int) bool {
		ia, okA := g.Index(cands[a].Name)
		ib, okB := g.Index(cands[b].Name)
		switch {
		case okA && okB:
			return ia < ib
		case okA != okB:
			return okA
		default:
			return cands[a].Name < cands[b].Name
		}
	})
}
