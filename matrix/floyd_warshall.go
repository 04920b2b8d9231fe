// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - Diameter scan over the finite entries of a closed distance matrix.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opDiameter      = "Diameter"
)

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j], d[i,k]+d[k,j]
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k: nothing to relax via k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes “no edge” off-diagonal; the diagonal MUST be 0.
//
// Errors: ErrNilMatrix, ErrNonSquare (wrapped with the operation tag).
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(opFloydWarshall, err)
	}

	// Fast-path: direct dense traversal.
	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return validatorErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return validatorErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return validatorErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return validatorErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}

// Diameter returns the largest finite entry of a distance matrix.
// Entries equal to +Inf (unreachable pairs) are ignored; an all-infinite
// off-diagonal yields 0.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Diameter(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, validatorErrorf(opDiameter, err)
	}

	var diameter float64
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if !math.IsInf(v, 0) && v > diameter {
				diameter = v
			}
		}

		return diameter, nil
	}

	n := m.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, validatorErrorf(opDiameter, err)
			}
			if !math.IsInf(v, 0) && v > diameter {
				diameter = v
			}
		}
	}

	return diameter, nil
}
