package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/stepwise/bfs"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0", trace.New())
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%d", i))
	}
	// loops and parallel pairs are rejected by AddEdge and simply skipped
	for k := 0; k < E; k++ {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", rnd.Intn(V)), fmt.Sprintf("n%d", rnd.Intn(V)), 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "n0", trace.New())
	}
}
