package tree

import "github.com/katalvlaran/kmst/graph"

// IsConnected reports whether the tree is a valid k-MST of g:
//
//  1. |edges| == k-1 and |nodes| == k (k ≤ 1 is trivially valid when sizes match);
//  2. every edge endpoint is a member and the pair is an input edge of g;
//  3. every member appears in some edge;
//  4. a breadth-first walk from the smallest member reaches all members.
//
// Complexity: O(k) expected.
func (t *Tree) IsConnected(g *graph.Graph) bool {
	if t.k == 0 {
		return len(t.nodes) == 0 && len(t.edges) == 0
	}
	if len(t.edges) != t.k-1 || len(t.nodes) != t.k {
		return false
	}
	if t.k == 1 {
		return true
	}

	adj := make(map[string][]string, len(t.nodes))
	for _, e := range t.edges {
		if !t.Contains(e.From) || !t.Contains(e.To) || !g.Edge(e.From, e.To).Original {
			return false
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	if len(adj) != len(t.nodes) {
		return false // isolated member
	}

	w := walker{adj: adj, visited: make(map[string]bool, len(t.nodes))}
	w.enqueue(t.Nodes()[0])
	w.loop()

	return len(w.visited) == len(t.nodes)
}

// walker holds breadth-first traversal state over an adjacency map.
type walker struct {
	adj     map[string][]string
	queue   []string
	visited map[string]bool
}

// enqueue marks id visited and schedules it.
func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// loop drains the queue, enqueueing unseen neighbors.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		for _, nbr := range w.adj[id] {
			if !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}
}
