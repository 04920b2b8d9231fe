// Package matrix provides the dense numeric storage behind the k-MST cost model.
//
// What & Why:
//
//	The search works on a complete n×n cost matrix derived from a sparse edge
//	list. The package offers a row-major Dense matrix with safe accessors, a
//	distance-matrix constructor (0 on the diagonal, +Inf elsewhere), the
//	Floyd–Warshall all-pairs shortest-path closure, and a diameter scan over
//	the finite entries of a closed distance matrix.
//
// Complexity:
//
//	At/Set/Rows/Cols run in O(1). Clone and Fill run in O(r*c).
//	FloydWarshall runs in O(n³) time with O(1) extra space (in place).
//	Diameter runs in O(n²).
package matrix
