package woa

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/kmst/graph"
)

// Optimizer is the population search loop.
type Optimizer struct {
	g     *graph.Graph
	k     int
	seed  int64
	rng   *rand.Rand
	log   *slog.Logger
	whale []*Whale
	best  int
	curve []float64

	popSize     int
	maxIter     int
	lb, ub      float64
	maxAttempts int
	stalls      int
}

// Result is the outcome of one run.
type Result struct {
	Seed      int64
	K         int
	Nodes     []string
	Edges     []graph.Edge
	Cost      float64
	Curve     []float64
	Connected bool
	// Stalls counts whale updates that kept their tree because no addition
	// was admitted within the attempt cap.
	Stalls int
}

// New validates the configuration, seeds the generator and initializes the
// population. The first whale with the strictly lowest cost becomes best.
//
// Errors: ErrNilGraph, ErrInvalidK, ErrInvalidConfig, ErrAdditionStalled.
func New(g *graph.Graph, k int, seed int64, opts ...Option) (*Optimizer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := &Optimizer{
		g:       g,
		k:       k,
		seed:    seed,
		log:     slog.New(slog.DiscardHandler),
		popSize: DefaultPopulationSize,
		maxIter: DefaultMaxIterations,
		lb:      DefaultLowerBound,
		ub:      DefaultUpperBound,
	}
	o.maxAttempts = defaultAttempts(g.NumNodes())
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	o.rng = rngFromSeed(seed)
	o.whale = make([]*Whale, o.popSize)
	var err error
	for i := range o.whale {
		if o.whale[i], err = newWhale(g, o.lb, o.ub, o.rng, k, o.maxAttempts); err != nil {
			return nil, fmt.Errorf("whale %d: %w", i, err)
		}
	}

	o.log.Info("initialized whale optimizer",
		slog.Int("population", o.popSize),
		slog.Int("iterations", o.maxIter),
		slog.Float64("lb", o.lb),
		slog.Float64("ub", o.ub),
		slog.Int64("seed", seed),
		slog.Int("k", k),
	)
	bestCost := o.whale[0].Cost()
	for i, w := range o.whale {
		o.log.Debug("initial whale", slog.Int("whale", i), slog.Float64("cost", w.Cost()))
		if w.Cost() < bestCost {
			o.best, bestCost = i, w.Cost()
		}
	}
	o.curve = make([]float64, o.maxIter)

	return o, nil
}

func (o *Optimizer) validate() error {
	n := o.g.NumNodes()
	switch {
	case o.k < 1 || o.k > n:
		return fmt.Errorf("%w: k=%d n=%d", ErrInvalidK, o.k, n)
	case o.popSize < 1:
		return fmt.Errorf("%w: population size %d", ErrInvalidConfig, o.popSize)
	case o.maxIter < 1:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, o.maxIter)
	case !(o.lb < o.ub):
		return fmt.Errorf("%w: bounds [%v, %v]", ErrInvalidConfig, o.lb, o.ub)
	case o.maxAttempts < 1:
		return fmt.Errorf("%w: max addition attempts %d", ErrInvalidConfig, o.maxAttempts)
	}

	return nil
}

// Run executes the full iteration budget and returns the best whale index.
// Each iteration records the best cost, updates every whale and then
// re-clamps and re-scores the population. Cancellation is checked between
// iterations. Calling Run again continues from the current population and
// overwrites the convergence curve.
func (o *Optimizer) Run(ctx context.Context) (int, error) {
	for i := 0; i < o.maxIter; i++ {
		if err := ctx.Err(); err != nil {
			return o.best, fmt.Errorf("iteration %d: %w", i, err)
		}
		o.curve[i] = o.whale[o.best].Cost()
		o.log.Debug("iteration", slog.Int("iteration", i), slog.Float64("best", o.curve[i]))

		a1, a2 := schedule(i, o.maxIter)
		if err := o.updatePositions(a1, a2); err != nil {
			return o.best, fmt.Errorf("iteration %d: %w", i, err)
		}
		o.recalculate()
	}
	for i, w := range o.whale {
		o.log.Debug("final whale", slog.Int("whale", i), slog.Float64("cost", w.Cost()))
	}

	return o.best, nil
}

// updatePositions moves every whale once. Best and reference positions are
// read from a snapshot taken before the first whale moves.
func (o *Optimizer) updatePositions(a1, a2 float64) error {
	snap := make([][]float64, len(o.whale))
	for i, w := range o.whale {
		snap[i] = w.Positions()
	}
	bestPos := snap[o.best]

	for i, w := range o.whale {
		co := o.draw(a1, a2)
		ref := o.best
		if co.searchesRandomly() {
			ref = o.rng.Intn(len(o.whale))
		}
		if err := o.swap(w, co, bestPos, snap[ref]); err != nil {
			return fmt.Errorf("whale %d: %w", i, err)
		}
	}

	return nil
}

// draw consumes r1, r2, the l draw and p, in that order.
func (o *Optimizer) draw(a1, a2 float64) coefficients {
	r1 := o.rng.Float64()
	r2 := o.rng.Float64()
	l := a2 + (a1-a2)*o.rng.Float64()
	p := o.rng.Float64()

	return coefficients{a: 2*a1*r1 - a1, c: 2 * r2, l: l, p: p}
}

// swap moves one member node out and one non-member node in, then repairs
// the tree through its neighbor cache.
func (o *Optimizer) swap(w *Whale, co coefficients, bestPos, refPos []float64) error {
	rm := w.IndexInTree(o.rng)
	w.position[rm] = clamp(co.move(w.position[rm], bestPos[rm], refPos[rm]), o.lb, o.ub)
	w.member[rm] = false

	add := -1
	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		j := w.IndexNotInTree(o.rng, rm)
		if j < 0 {
			break // k == n: nothing to add
		}
		x := clamp(co.move(w.position[j], bestPos[j], refPos[j]), o.lb, o.ub)
		if admits(x) {
			w.position[j] = x
			w.member[j] = true
			add = j
			break
		}
	}
	if add < 0 {
		w.member[rm] = true
		if w.Len() > o.k {
			o.stalls++
			o.log.Debug("addition stalled", slog.Int("attempts", o.maxAttempts))
		}

		return nil
	}

	if _, err := w.tree.Neighbor(o.g, o.g.Name(add), o.g.Name(rm)); err != nil {
		return err
	}
	w.tree.RecoverSolution()
	w.refresh()

	return nil
}

// recalculate clamps every whale, refreshes its cost and moves best on a
// strict improvement over the current best whale's cost.
func (o *Optimizer) recalculate() {
	bestCost := o.whale[o.best].Cost()
	for i, w := range o.whale {
		w.clampAll()
		if c := w.refresh(); c < bestCost {
			o.best, bestCost = i, c
		}
	}
}

// Best returns the best whale.
func (o *Optimizer) Best() *Whale { return o.whale[o.best] }

// BestIndex returns the population index of the best whale.
func (o *Optimizer) BestIndex() int { return o.best }

// Population returns the whales in population order.
func (o *Optimizer) Population() []*Whale {
	return append([]*Whale(nil), o.whale...)
}

// Convergence returns a copy of the convergence curve: entry i is the best
// cost at the start of iteration i.
func (o *Optimizer) Convergence() []float64 {
	return append([]float64(nil), o.curve...)
}

// Result summarizes the best whale.
func (o *Optimizer) Result() Result {
	t := o.Best().Tree()

	return Result{
		Seed:      o.seed,
		K:         o.k,
		Nodes:     t.Nodes(),
		Edges:     t.Edges(),
		Cost:      o.Best().Cost(),
		Curve:     o.Convergence(),
		Connected: t.IsConnected(o.g),
		Stalls:    o.stalls,
	}
}
