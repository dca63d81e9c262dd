package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/prim_kruskal"
	"github.com/katalvlaran/stepwise/trace"
)

// ExampleKruskal_triangle computes the MST of a triangle and prints the stream.
func ExampleKruskal_triangle() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	tr := trace.New(trace.WithSink(func(ev trace.Event) { fmt.Println(ev) }))
	res, err := prim_kruskal.Kruskal(g, tr, prim_kruskal.WithExhaustiveScan())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total:", res.TotalCost)
	// Output:
	// edge-explore(A-B:1)
	// mst-add(A-B:1 cost=1)
	// edge-explore(B-C:2)
	// mst-add(B-C:2 cost=3)
	// edge-explore(A-C:3)
	// mst-reject(A-C:3 cost=3)
	// done(3)
	// total: 3
}

// ExamplePrim_pentagon grows a tree around a weighted 5-cycle with one chord.
func ExamplePrim_pentagon() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 3)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("D", "E", 4)
	_, _ = g.AddEdge("E", "A", 5)
	_, _ = g.AddEdge("A", "C", 2)

	res, err := prim_kruskal.Prim(g, trace.New())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Edges {
		fmt.Println(e)
	}
	fmt.Println("total:", res.TotalCost)
	// Output:
	// A-B(2)
	// A-C(2)
	// C-D(1)
	// D-E(4)
	// total: 9
}
