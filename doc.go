// Package kmst searches low-cost k-node subtrees (k-MST) of weighted
// undirected graphs with a whale optimization metaheuristic.
//
// What is a k-MST?
//
//	A connected subtree with exactly k nodes and k-1 edges, picked from a
//	larger graph so that its total (normalized) edge weight is as small as
//	possible. The problem is NP-hard; this module is a heuristic search and
//	does not promise the global optimum.
//
// Layout:
//
//	matrix/    dense row-major matrices, Floyd–Warshall, diameter scan
//	graph/     Graph + CostModel (adjusted weights), subset Prim
//	tree/      candidate subtree: cost, normalization, one-swap neighbor
//	woa/       Whale encoding and the population search loop
//	graphio/   edge-list reader, text reports, SVG plots
//	config/    YAML + environment configuration
//	store/     run history (memory, SQLite)
//	cmd/kmst   command-line entry point
//
// Quick example:
//
//	g, _ := graph.New(edges)
//	o, _ := woa.New(g, 10, 42, woa.WithPopulationSize(30))
//	_, _ = o.Run(ctx)
//	res := o.Result() // Edges, Cost, Curve, Connected
//
// SPDX-License-Identifier: MIT
package kmst
