package tree

import "errors"

// ErrNodePresent is returned by Neighbor when the node to add is already a member.
var ErrNodePresent = errors.New("tree: node to add is already in the tree")

// ErrNodeAbsent is returned by Neighbor when the node to remove is not a member.
var ErrNodeAbsent = errors.New("tree: node to remove is not in the tree")

// ErrInvalidK is returned by Generate when k is outside [1, n].
var ErrInvalidK = errors.New("tree: k must be in [1, n]")
