package tree_test

import (
	"fmt"

	"github.com/katalvlaran/kmst/graph"
	"github.com/katalvlaran/kmst/tree"
)

// ExampleTree_Neighbor swaps A out of the path A–B–C and lets Prim attach D.
func ExampleTree_Neighbor() {
	g, _ := graph.New([]graph.Input{
		{From: "A", To: "B", Weight: 3},
		{From: "B", To: "C", Weight: 5},
		{From: "C", To: "D", Weight: 2},
		{From: "A", To: "D", Weight: 9},
	})
	t := tree.New([]graph.Edge{
		{From: "A", To: "B", Weight: 3},
		{From: "B", To: "C", Weight: 5},
	}, []string{"A", "B", "C"}, 3)

	fmt.Printf("before %.4f\n", t.Cost(g))
	nb, _ := t.Neighbor(g, "D", "A")
	fmt.Printf("neighbor %.4f\n", nb.Cost)
	t.RecoverSolution()
	fmt.Println(t.Nodes(), t.IsConnected(g))
	// Output:
	// before 0.5714
	// neighbor 0.5000
	// [B C D] true
}
