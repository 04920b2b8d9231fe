package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kmst/matrix"
)

// CostModel owns the all-pairs shortest-path closure of a raw distance
// matrix and the graph diameter derived from it.
//
// It is computed once per Graph; the raw matrix is never mutated by
// NewCostModel.
type CostModel struct {
	dist     *matrix.Dense // closed distance matrix
	diameter float64       // largest finite shortest-path distance
}

// NewCostModel runs Floyd–Warshall over a clone of raw (+Inf = no edge,
// diagonal = 0) and scans the closure for the diameter.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped).
// Complexity: O(n³) time, O(n²) memory.
func NewCostModel(raw *matrix.Dense) (*CostModel, error) {
	if err := matrix.ValidateSquare(raw); err != nil {
		return nil, fmt.Errorf("graph: cost model: %w", err)
	}

	dist := raw.Clone().(*matrix.Dense)
	if err := matrix.FloydWarshall(dist); err != nil {
		return nil, fmt.Errorf("graph: cost model: %w", err)
	}
	diameter, err := matrix.Diameter(dist)
	if err != nil {
		return nil, fmt.Errorf("graph: cost model: %w", err)
	}

	return &CostModel{dist: dist, diameter: diameter}, nil
}

// Diameter returns the largest finite shortest-path distance.
func (c *CostModel) Diameter() float64 { return c.diameter }

// Distance returns the shortest-path distance between indices i and j
// (+Inf when unreachable or out of range).
func (c *CostModel) Distance(i, j int) float64 {
	v, err := c.dist.At(i, j)
	if err != nil {
		return math.Inf(1)
	}

	return v
}

// Price returns the adjusted weight of a pair that is NOT joined by an
// input edge: diameter² when unreachable, distance × diameter otherwise.
func (c *CostModel) Price(i, j int) float64 {
	d := c.Distance(i, j)
	if math.IsInf(d, 1) {
		return c.diameter * c.diameter
	}

	return d * c.diameter
}

// Adjust rewrites, in place, every cell of raw whose flag in original
// (row-major, len n*n) is false with its Price. Original cells and the
// diagonal are left untouched.
//
// Errors: matrix.ErrDimensionMismatch when original does not cover raw.
// Complexity: O(n²).
func (c *CostModel) Adjust(raw *matrix.Dense, original []bool) error {
	n := raw.Rows()
	if raw.Cols() != n || len(original) != n*n || c.dist.Rows() != n {
		return fmt.Errorf("graph: adjust %dx%d with %d flags: %w",
			raw.Rows(), raw.Cols(), len(original), matrix.ErrDimensionMismatch)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if original[i*n+j] {
				continue
			}
			if err := raw.Set(i, j, c.Price(i, j)); err != nil {
				return fmt.Errorf("graph: adjust: %w", err)
			}
		}
	}

	return nil
}
