package woa

import "log/slog"

// Defaults used when an Option is not supplied.
const (
	DefaultPopulationSize = 30
	DefaultMaxIterations  = 100
	DefaultLowerBound     = -10.0
	DefaultUpperBound     = 10.0
)

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithPopulationSize sets the number of whales.
func WithPopulationSize(n int) Option {
	return func(o *Optimizer) { o.popSize = n }
}

// WithMaxIterations sets the fixed iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Optimizer) { o.maxIter = n }
}

// WithBounds sets the position bounds; lb must be strictly less than ub.
func WithBounds(lb, ub float64) Option {
	return func(o *Optimizer) { o.lb, o.ub = lb, ub }
}

// WithLogger routes progress records to l. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Optimizer) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.log = l
	}
}

// WithMaxAdditionAttempts caps the rejected draws allowed while selecting
// nodes, both at whale initialization and per node addition. The default is
// 1000 times the node count.
func WithMaxAdditionAttempts(n int) Option {
	return func(o *Optimizer) { o.maxAttempts = n }
}
