// Package graphio holds the file-facing collaborators of the k-MST search:
// the comma-separated edge-list reader, the per-seed text report writer and
// the gonum/plot SVG renderers for a result tree and a convergence curve.
//
// Nothing here is used by the search itself; every function works on the
// plain value types of package graph.
package graphio
