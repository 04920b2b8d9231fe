package woa

import "math"

const (
	// SpiralShape is the logarithmic spiral constant b.
	SpiralShape = 1.0

	// additionThreshold is the fixed logistic cut for admitting a node.
	additionThreshold = 0.5
)

// Move applies the WOA position update to one coordinate.
//
//	p < 0.5, |a| < 1   encircle the best:  best - a*(c*best - actual)
//	p < 0.5, |a| >= 1  search around ref:  ref  - a*(c*ref  - actual)
//	p >= 0.5           spiral to the best: (best-actual)*e^(b*l)*cos(2πl) + actual
//
// The result is not clamped.
func Move(actual, best, ref, a, c, b, l, p float64) float64 {
	if p < 0.5 {
		if math.Abs(a) < 1 {
			return best - a*(c*best-actual)
		}

		return ref - a*(c*ref-actual)
	}

	return (best-actual)*math.Exp(b*l)*math.Cos(2*math.Pi*l) + actual
}

// coefficients are the per-whale draws of one iteration.
type coefficients struct {
	a, c, l, p float64
}

// move applies Move with the spiral constant.
func (co coefficients) move(actual, best, ref float64) float64 {
	return Move(actual, best, ref, co.a, co.c, SpiralShape, co.l, co.p)
}

// searchesRandomly reports whether the reference whale is drawn at random.
func (co coefficients) searchesRandomly() bool {
	return co.p < 0.5 && math.Abs(co.a) >= 1
}

// schedule returns a1 (2 → 0) and a2 (-1 → -2) for iteration i of budget.
func schedule(i, budget int) (a1, a2 float64) {
	m := float64(budget)

	return 2 - float64(i)*(2/m), -1 + float64(i)*(-1/m)
}

// membershipProbability squashes an initial position into (0, 1), centered at 0.5.
func membershipProbability(x float64) float64 {
	return 1 / (1 + math.Exp(-10*(x-0.5)))
}

// admits is the deterministic logistic decision applied to a clamped
// candidate position during node addition.
func admits(x float64) bool {
	return 1/(1+math.Exp(-x)) >= additionThreshold
}

func clamp(x, lb, ub float64) float64 {
	return math.Min(math.Max(x, lb), ub)
}
