// Package graph holds the static cost model of the k-MST search.
//
// What & Why
//
//   - A Graph is built once from a sparse, undirected edge list and is
//     immutable afterwards. Nodes get dense indices in first-seen order.
//
//   - Every node pair gets a cost. Pairs joined by an input edge keep their
//     weight; every other pair is priced through the CostModel:
//
//   - reachable pairs:   shortest-path distance × diameter
//
//   - unreachable pairs: diameter²
//
//     The inflation steers the search toward real edges while keeping the
//     matrix complete and finite, so Prim never runs out of candidate edges.
//
//   - ConstructSubtreeMST runs Prim's algorithm restricted to an arbitrary
//     node subset, optionally continuing from an already-grown partial tree.
//     It is the construction and repair primitive used by package tree.
//
// Determinism
//
//   - Node indices follow input order; candidate edges with equal weight leave
//     the priority queue in insertion order (see OrderedEdge).
//
// Complexity
//
//   - New: O(n³) (Floyd–Warshall) time, O(n²) memory.
//   - Edge / EdgeAt: O(1).
//   - ConstructSubtreeMST over m candidates: O(m² log m).
package graph
