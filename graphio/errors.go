package graphio

import "errors"

var (
	// ErrInvalidPath is returned for an input path without a .txt extension.
	ErrInvalidPath = errors.New("graphio: input must be a .txt file")

	// ErrInvalidFormat is returned for a record that is not "from,to,weight".
	ErrInvalidFormat = errors.New("graphio: invalid edge record")

	// ErrNonFinite is returned when a curve to plot holds NaN or ±Inf.
	ErrNonFinite = errors.New("graphio: non-finite value")
)
