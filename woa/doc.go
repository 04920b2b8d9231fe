// Package woa implements a whale optimization search for low-cost k-node
// subtrees (k-MST) of a graph.Graph.
//
// Each Whale carries one continuous position per graph node and the binary
// tree membership decoded from it. An Optimizer evolves a fixed population
// through a fixed number of iterations; in every iteration each whale
// removes one member node and adds one non-member node, both chosen by the
// classic WOA movement rule (encircling, random search or spiral), and the
// resulting one-swap tree is repaired with subset Prim (see tree.Tree.Neighbor).
//
// Determinism:
//   - All randomness flows from a single *rand.Rand seeded by the caller; the
//     same graph, options and seed reproduce the same convergence curve and
//     best cost bit for bit.
//
// Concurrency:
//   - An Optimizer is single-threaded and not safe for concurrent use. Run
//     independent seeds on independent Optimizers.
//
// Errors:
//   - ErrInvalidK, ErrInvalidConfig at construction.
//   - ErrAdditionStalled when the logistic addition rule keeps rejecting
//     candidates beyond the configured attempt cap.
package woa
