// Package tree implements the candidate k-node subtree explored by the search.
//
// A Tree holds k node names, its k-1 edges (adjusted weights), and three
// memoized values:
//
//   - Cost      sum of edge weights divided by Normalize.
//   - Normalize sum of the k-1 largest input-edge weights of the whole graph,
//     a problem-scale denominator that keeps costs comparable.
//   - Neighbor  the last one-node-swap alternative computed by Neighbor,
//     committed with RecoverSolution.
//
// Memoized values carry an explicit "set" flag, so a legitimately zero cost
// (k = 1) is never mistaken for "not computed".
//
// Validity is checked explicitly with IsConnected; construction and repair
// never fail loudly when a candidate set cannot be spanned.
package tree
