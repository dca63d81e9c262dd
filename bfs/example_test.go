package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepwise/bfs"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	// Build a 3×3 undirected grid: vertices "i_j" for 0 ≤ i,j < 3
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0", trace.New())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFS_events prints the step stream of a small path graph.
func ExampleBFS_events() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	tr := trace.New(trace.WithSink(func(ev trace.Event) { fmt.Println(ev) }))
	if _, err := bfs.BFS(g, "A", tr); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// visit(A=0)
	// edge-explore(A-B:1)
	// visit(B=1)
	// edge-commit(A-B:1)
	// edge-explore(B-C:1)
	// visit(C=2)
	// edge-commit(B-C:1)
	// done(3)
}
