package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dfs"
	pk "github.com/katalvlaran/stepwise/prim_kruskal"
	"github.com/katalvlaran/stepwise/trace"
)

// buildScenario creates A-B:1, B-C:2, A-C:4, C-D:1.
func buildScenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 4}, {"C", "D", 1}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// buildMediumGraph creates a connected graph: a random spanning path plus extra edges.
func buildMediumGraph(r *rand.Rand, n, extra int) *core.Graph {
	g := core.NewGraph()
	perm := r.Perm(n)
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", perm[i-1]), fmt.Sprintf("v%d", perm[i]), int64(1+r.Intn(10)))
	}
	for k := 0; k < extra; k++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", r.Intn(n)), fmt.Sprintf("v%d", r.Intn(n)), int64(1+r.Intn(10)))
	}

	return g
}

func edgeStrings(es []core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.String()
	}

	return out
}

func TestValidation(t *testing.T) {
	_, err := pk.Prim(nil, trace.New())
	assert.ErrorIs(t, err, pk.ErrNilGraph)
	_, err = pk.Kruskal(buildScenario(t), nil)
	assert.ErrorIs(t, err, pk.ErrNilTrace)
	_, err = pk.Compute(buildScenario(t), trace.New(), pk.WithMethod("boruvka"))
	assert.ErrorIs(t, err, pk.ErrUnknownMethod)

	g := buildScenario(t)
	require.True(t, g.TryAcquire())
	_, err = pk.Prim(g, trace.New())
	assert.ErrorIs(t, err, trace.ErrRunInProgress)
	g.Release()
}

// TestKruskal_Scenario checks the default stop rule at |V|-1 commits.
func TestKruskal_Scenario(t *testing.T) {
	rec := &trace.Recorder{}
	res, err := pk.Kruskal(buildScenario(t), trace.New(trace.WithSink(rec.Sink())))
	require.NoError(t, err)

	assert.Equal(t, []string{"A-B(1)", "C-D(1)", "B-C(2)"}, edgeStrings(res.Edges))
	assert.Equal(t, int64(4), res.TotalCost)
	assert.Empty(t, res.Rejected)

	want := []string{
		"edge-explore(A-B:1)", "mst-add(A-B:1 cost=1)",
		"edge-explore(C-D:1)", "mst-add(C-D:1 cost=2)",
		"edge-explore(B-C:2)", "mst-add(B-C:2 cost=4)",
		"done(4)",
	}
	if diff := cmp.Diff(want, rec.Strings()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

// TestKruskal_ExhaustiveScan examines the heavy edge too and rejects it.
func TestKruskal_ExhaustiveScan(t *testing.T) {
	rec := &trace.Recorder{}
	res, err := pk.Kruskal(buildScenario(t), trace.New(trace.WithSink(rec.Sink())), pk.WithExhaustiveScan())
	require.NoError(t, err)

	assert.Equal(t, []string{"A-B(1)", "C-D(1)", "B-C(2)"}, edgeStrings(res.Edges))
	assert.Equal(t, []string{"A-C(4)"}, edgeStrings(res.Rejected))
	assert.Equal(t, int64(4), res.TotalCost)
	n := len(rec.Events)
	assert.Equal(t, "mst-reject(A-C:4 cost=4)", rec.Events[n-2].String())
}

func TestPrim_Scenario(t *testing.T) {
	rec := &trace.Recorder{}
	res, err := pk.Prim(buildScenario(t), trace.New(trace.WithSink(rec.Sink())))
	require.NoError(t, err)

	want := []string{
		"edge-explore(A-B:1)", "edge-explore(A-C:4)", "mst-add(A-B:1 cost=1)",
		"edge-explore(B-C:2)", "edge-explore(A-C:4)", "mst-add(B-C:2 cost=3)",
		"edge-explore(C-D:1)", "mst-add(C-D:1 cost=4)",
		"done(4)",
	}
	if diff := cmp.Diff(want, rec.Strings()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(4), res.TotalCost)
}

// TestPrim_TieBreak: both crossing edges weigh 1; the first in insertion order wins.
func TestPrim_TieBreak(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("A", "B", 1)
	res, err := pk.Prim(g, trace.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"A-C(1)", "A-B(1)"}, edgeStrings(res.Edges))
}

func TestForest_Disconnected(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph()
		_, _ = g.AddEdge("A", "B", 3)
		_, _ = g.AddEdge("C", "D", 2)
		_ = g.AddVertex("E")
		return g
	}
	for _, method := range []string{pk.MethodPrim, pk.MethodKruskal} {
		res, err := pk.Compute(build(), trace.New(), pk.WithMethod(method))
		require.NoError(t, err, method)
		assert.Equal(t, trace.StatusCompleted, res.Status)
		assert.Len(t, res.Edges, 2, method)
		assert.Equal(t, int64(5), res.TotalCost, method)
	}
}

func TestEmptyAndSingleVertex(t *testing.T) {
	rec := &trace.Recorder{}
	res, err := pk.Prim(core.NewGraph(), trace.New(trace.WithSink(rec.Sink())))
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.TotalCost)
	assert.Empty(t, rec.Events)

	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err = pk.Kruskal(g, trace.New(trace.WithSink(rec.Sink())))
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Equal(t, []string{"done(0)"}, rec.Strings())
}

// TestComparison_RandomGraphs: equal cost, |V|-1 acyclic edges for connected graphs.
func TestComparison_RandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		g := buildMediumGraph(r, 2+r.Intn(15), r.Intn(30))
		p, err := pk.Prim(g, trace.New())
		require.NoError(t, err)
		k, err := pk.Kruskal(g, trace.New())
		require.NoError(t, err)

		assert.Equal(t, p.TotalCost, k.TotalCost, "trial %d", trial)
		assert.Len(t, p.Edges, g.VertexCount()-1)
		assert.Len(t, k.Edges, g.VertexCount()-1)

		tree := core.NewGraph()
		for _, e := range k.Edges {
			_, err = tree.AddEdge(e.From, e.To, e.Weight)
			require.NoError(t, err)
		}
		cyclic, _, err := dfs.HasCycle(tree)
		require.NoError(t, err)
		assert.False(t, cyclic)
	}
}

func TestCancelledRun(t *testing.T) {
	h := trace.NewRunHandle()
	sink := func(ev trace.Event) {
		if ev.Kind == trace.KindMSTAdd {
			h.Cancel()
		}
	}
	res, err := pk.Kruskal(buildScenario(t), trace.New(trace.WithSink(sink), trace.WithHandle(h)))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusAborted, res.Status)
	assert.Len(t, res.Edges, 1)
}
