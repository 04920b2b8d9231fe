package graph

// ConstructSubtreeMST grows a minimum spanning tree over candidates with
// Prim's algorithm, using adjusted weights, and continues from seed when a
// partial tree already exists.
//
// candidates carries the membership of the partial tree (In == true for
// nodes already spanned by seed). The slice is updated in place: every node
// reached by the algorithm ends with In == true.
//
// Steps:
//  1. If no candidate is In, mark the first one In.
//  2. Seed the queue with every edge from an In node to an Out node.
//  3. Pop the least-weight edge; skip it when its target is already In
//     (lazy deletion); otherwise mark the target In, append the edge and
//     push its edges to the remaining Out nodes.
//  4. Stop at k-1 edges or when the queue is empty.
//
// The result is seed followed by the new edges. It is shorter than k-1 only
// when the candidate set cannot be spanned; callers validate the size (see
// tree.Tree.IsConnected) rather than expect an error.
//
// Complexity: O(m² log m) time, O(m²) queue memory for m candidates.
func (g *Graph) ConstructSubtreeMST(candidates []Candidate, seed []Edge, k int) []Edge {
	want := k - 1
	if want < len(seed) {
		want = len(seed)
	}
	mst := make([]Edge, len(seed), want)
	copy(mst, seed)

	m := len(candidates)
	if m == 0 {
		return mst
	}

	// index resolution once; unknown names map to -1 and price as +Inf
	idx := make([]int, m)
	anyIn := false
	var i, j int
	for i = 0; i < m; i++ {
		if gi, ok := g.index[candidates[i].Name]; ok {
			idx[i] = gi
		} else {
			idx[i] = -1
		}
		anyIn = anyIn || candidates[i].In
	}
	if !anyIn {
		candidates[0].In = true
	}

	pq := newEdgeQueue(m * m)
	for i = 0; i < m; i++ {
		if !candidates[i].In {
			continue
		}
		for j = 0; j < m; j++ {
			if !candidates[j].In {
				pq.push(OrderedEdge{Weight: g.EdgeAt(idx[i], idx[j]).Weight, From: i, To: j})
			}
		}
	}

	for len(mst) < k-1 && pq.Len() > 0 {
		e := pq.pop()
		if candidates[e.To].In {
			continue // stale entry
		}
		candidates[e.To].In = true
		mst = append(mst, Edge{
			From:   candidates[e.From].Name,
			To:     candidates[e.To].Name,
			Weight: e.Weight,
		})

		for j = 0; j < m; j++ {
			if !candidates[j].In {
				pq.push(OrderedEdge{Weight: g.EdgeAt(idx[e.To], idx[j]).Weight, From: e.To, To: j})
			}
		}
	}

	return mst
}

// CandidatesOf builds an all-Out candidate slice from node names, the usual
// input for a from-scratch subtree.
func CandidatesOf(names []string) []Candidate {
	out := make([]Candidate, len(names))
	for i, name := range names {
		out[i] = Candidate{Name: name}
	}

	return out
}
