package graph

import "errors"

// ErrEmptyGraph indicates that no input edges were supplied.
var ErrEmptyGraph = errors.New("graph: no input edges")

// ErrEmptyNode indicates an input edge with an empty node name.
var ErrEmptyNode = errors.New("graph: empty node name")

// ErrInvalidWeight indicates a NaN, infinite or negative input weight.
var ErrInvalidWeight = errors.New("graph: weight must be finite and non-negative")

// ErrSelfLoop indicates an input edge whose endpoints are the same node.
// Self-loops are implied (weight 0) and may not be supplied explicitly.
var ErrSelfLoop = errors.New("graph: self-loop in input")
