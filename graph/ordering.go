package graph

import (
	"cmp"
	"container/heap"
)

// OrderedEdge is a weighted, directed (From → To) pair of candidate
// positions, used as the element of the Prim priority queue.
//
// Ordering is min-weight-first and looks at Weight only: two OrderedEdges
// compare equal iff their weights are equal, whatever their endpoints.
// The queue breaks such ties by insertion order (see edgeQueue).
type OrderedEdge struct {
	Weight float64
	From   int // position of the tree-side endpoint in the candidate slice
	To     int // position of the outside endpoint in the candidate slice
}

// Compare returns -1 when e must leave the queue before o, +1 when after,
// and 0 when their weights are equal.
func (e OrderedEdge) Compare(o OrderedEdge) int {
	return cmp.Compare(e.Weight, o.Weight)
}

// queuedEdge pairs an OrderedEdge with its insertion sequence number.
type queuedEdge struct {
	edge OrderedEdge
	seq  uint64
}

// edgeQueue implements heap.Interface as a min-heap of OrderedEdge.
// Equal weights pop in FIFO order, which makes Prim reproducible.
type edgeQueue struct {
	items []queuedEdge
	next  uint64
}

// newEdgeQueue returns an empty queue with room for capacity edges.
func newEdgeQueue(capacity int) *edgeQueue {
	return &edgeQueue{items: make([]queuedEdge, 0, capacity)}
}

// Len returns the number of queued edges.
func (q *edgeQueue) Len() int { return len(q.items) }

// Less orders by weight, then by insertion sequence.
func (q *edgeQueue) Less(i, j int) bool {
	if c := q.items[i].edge.Compare(q.items[j].edge); c != 0 {
		return c < 0
	}

	return q.items[i].seq < q.items[j].seq
}

// Swap swaps elements at indices i and j.
func (q *edgeQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push appends a queuedEdge. Called by heap.Push.
func (q *edgeQueue) Push(x any) { q.items = append(q.items, x.(queuedEdge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *edgeQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]

	return item
}

// push stamps e with the next sequence number and inserts it.
func (q *edgeQueue) push(e OrderedEdge) {
	heap.Push(q, queuedEdge{edge: e, seq: q.next})
	q.next++
}

// pop extracts the least-weight edge (oldest among ties).
func (q *edgeQueue) pop() OrderedEdge {
	return heap.Pop(q).(queuedEdge).edge
}
