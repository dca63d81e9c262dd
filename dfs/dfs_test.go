package dfs_test

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/bfs"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dfs"
	"github.com/katalvlaran/stepwise/trace"
)

// buildDiamond creates A–B, A–C, B–D, C–D.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func run(t *testing.T, g *core.Graph, start string, opts ...dfs.Option) (*dfs.DFSResult, *trace.Recorder) {
	t.Helper()
	rec := &trace.Recorder{}
	res, err := dfs.DFS(g, start, trace.New(trace.WithSink(rec.Sink())), opts...)
	require.NoError(t, err)

	return res, rec
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A", trace.New())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), "A", nil)
	assert.ErrorIs(t, err, dfs.ErrNilTrace)
}

func TestDFS_StartNotFound(t *testing.T) {
	rec := &trace.Recorder{}
	res, err := dfs.DFS(buildDiamond(t), "X", trace.New(trace.WithSink(rec.Sink())))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	var nf *core.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Empty(t, rec.Events)
}

func TestDFS_EmptyGraph(t *testing.T) {
	res, rec := run(t, core.NewGraph(), "A")
	assert.Equal(t, trace.StatusCompleted, res.Status)
	assert.Empty(t, res.Order)
	assert.Empty(t, rec.Events)
}

// TestDFS_EventSequence pins the stream and the active-path hooks on the diamond.
func TestDFS_EventSequence(t *testing.T) {
	var stack []string
	res, rec := run(t, buildDiamond(t), "A",
		dfs.WithOnPush(func(id string, _ int) { stack = append(stack, "+"+id) }),
		dfs.WithOnPop(func(id string) { stack = append(stack, "-"+id) }),
	)

	want := []string{
		"visit(A=0)",
		"edge-explore(A-B:1)", "visit(B=1)", "edge-commit(A-B:1)",
		"edge-explore(B-D:1)", "visit(D=2)", "edge-commit(B-D:1)",
		"edge-explore(D-C:1)", "visit(C=3)", "edge-commit(D-C:1)",
		"done(4)",
	}
	if diff := cmp.Diff(want, rec.Strings()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, []string{"C", "D", "B", "A"}, res.Finish)
	assert.Equal(t, []string{"+A", "+B", "+D", "+C", "-C", "-D", "-B", "-A"}, stack)
	assert.Equal(t, 4, res.MaxStack)
	assert.Equal(t, "D", res.Parent["C"])
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	res, _ := run(t, buildDiamond(t), "A", dfs.WithMaxDepth(1))
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, _ = run(t, buildDiamond(t), "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "D" }))
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildDiamond(t)
	_, _ = g.AddEdge("X", "Y", 2)
	require.NoError(t, g.AddVertex("Z"))

	res, _ := run(t, g, "C")
	assert.Len(t, res.Order, 4)

	res, rec := run(t, g, "C", dfs.WithFullTraversal())
	assert.Equal(t, []string{"C", "A", "B", "D", "X", "Y", "Z"}, res.Order)
	last := rec.Events[len(rec.Events)-1]
	assert.Equal(t, "done(7)", last.String())
}

func TestDFS_Cancelled(t *testing.T) {
	h := trace.NewRunHandle()
	pops := 0
	g := buildDiamond(t)
	tr := trace.New(trace.WithHandle(h), trace.WithSink(func(ev trace.Event) {
		if ev.Kind == trace.KindVisit && ev.Node == "D" {
			h.Cancel()
		}
	}))
	res, err := dfs.DFS(g, "A", tr, dfs.WithOnPop(func(string) { pops++ }))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusAborted, res.Status)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)
	assert.Equal(t, 3, pops, "active path unwinds on abort")
	assert.False(t, g.Busy())
}

// TestDFS_SameNodeSetAsBFS checks that both traversals reach the same component on random graphs.
func TestDFS_SameNodeSetAsBFS(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		g := core.NewGraph()
		n := 2 + r.Intn(12)
		for i := 0; i < n; i++ {
			_ = g.AddVertex(fmt.Sprintf("v%d", i))
		}
		for k := 0; k < 2*n; k++ {
			_, _ = g.AddEdge(fmt.Sprintf("v%d", r.Intn(n)), fmt.Sprintf("v%d", r.Intn(n)), int64(1+r.Intn(9)))
		}

		d, _ := run(t, g, "v0")
		b, err := bfs.BFS(g, "v0", trace.New())
		require.NoError(t, err)

		got, want := append([]string(nil), d.Order...), append([]string(nil), b.Order...)
		sort.Strings(got)
		sort.Strings(want)
		assert.Equal(t, want, got)

		again, _ := run(t, g, "v0")
		assert.Equal(t, d.Order, again.Order, "deterministic")
	}
}
