package woa

import "errors"

var (
	// ErrNilGraph is returned when the optimizer or a whale is built without a graph.
	ErrNilGraph = errors.New("woa: nil graph")

	// ErrInvalidK indicates k outside [1, NumNodes].
	ErrInvalidK = errors.New("woa: k must be in [1, number of nodes]")

	// ErrInvalidConfig indicates a non-positive population or iteration budget,
	// a non-positive attempt cap, or bounds with lb >= ub.
	ErrInvalidConfig = errors.New("woa: invalid configuration")

	// ErrAdditionStalled is returned when no node could be selected within the
	// attempt cap.
	ErrAdditionStalled = errors.New("woa: node selection stalled")
)
