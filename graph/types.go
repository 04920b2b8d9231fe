package graph

// Input is one record of the sparse edge list: an undirected edge From–To
// with a non-negative weight. Later records overwrite earlier ones for the
// same pair.
type Input struct {
	From   string
	To     string
	Weight float64
}

// Cell is one entry of the complete cost matrix.
//
// Fields:
//
//	Weight    adjusted weight used by every optimization decision.
//	Original  true when the pair is joined by an input edge (or is the diagonal).
type Cell struct {
	Weight   float64
	Original bool
}

// Edge is a named, weighted tree edge.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Candidate is one node offered to ConstructSubtreeMST together with its
// membership in the already-grown partial tree.
type Candidate struct {
	Name string
	In   bool
}
