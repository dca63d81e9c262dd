package engine_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dijkstra"
	"github.com/katalvlaran/stepwise/engine"
	"github.com/katalvlaran/stepwise/internal/metrics"
	"github.com/katalvlaran/stepwise/trace"
)

// scenario builds A-B:1, B-C:2, A-C:4, C-D:1.
func scenario(t *testing.T) *core.Graph {
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

func TestRunSort(t *testing.T) {
	input := []int64{5, 3, 8, 1}
	rec := &trace.Recorder{}
	out, err := engine.RunSort(context.Background(), " Bubble ", input, engine.WithSink(rec.Sink()))
	require.NoError(t, err)

	assert.Equal(t, trace.StatusCompleted, out.Status)
	assert.Equal(t, []int64{1, 3, 5, 8}, out.Result)
	assert.Equal(t, []int{3, 1, 0, 2}, out.Origins)
	assert.Equal(t, 6, out.Comparisons)
	assert.Equal(t, 4, out.Swaps)
	assert.Equal(t, len(rec.Events), out.Events)
	assert.Equal(t, []int64{5, 3, 8, 1}, input, "caller slice untouched")
}

func TestRunSort_AllKinds(t *testing.T) {
	for _, kind := range []string{"bubble", "selection", "insertion", "merge", "heap"} {
		out, err := engine.RunSort(context.Background(), kind, []int64{4, 2, 9, 2, 7, 1})
		require.NoError(t, err, kind)
		assert.Equal(t, []int64{1, 2, 2, 4, 7, 9}, out.Result, kind)
	}
}

func TestRunSort_Empty(t *testing.T) {
	out, err := engine.RunSort(context.Background(), "heap", nil)
	require.NoError(t, err)
	assert.Equal(t, trace.StatusCompleted, out.Status)
	assert.Empty(t, out.Result)
	assert.Zero(t, out.Events)
}

func TestRunTraversal(t *testing.T) {
	g := scenario(t)

	out, err := engine.RunTraversal(context.Background(), "bfs", g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, out.VisitOrder)
	assert.Nil(t, out.Distances)

	out, err = engine.RunTraversal(context.Background(), "DFS", g, "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, out.VisitOrder)
	assert.Equal(t, "A", out.VisitOrder[0])

	out, err = engine.RunTraversal(context.Background(), "dijkstra", g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4}, out.Distances)
	assert.Equal(t, "C", out.Parent["D"])
}

func TestRunTraversal_UnreachableKeepsInfiniteDistance(t *testing.T) {
	g := scenario(t)
	require.NoError(t, g.AddVertex("Z"))

	out, err := engine.RunTraversal(context.Background(), "dijkstra", g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4, "Z": dijkstra.Infinity}, out.Distances)
	assert.NotContains(t, out.VisitOrder, "Z")

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"Z":9223372036854775807`)
}

func TestRunTraversal_MissingStart(t *testing.T) {
	rec := &trace.Recorder{}
	_, err := engine.RunTraversal(context.Background(), "bfs", scenario(t), "Q", engine.WithSink(rec.Sink()))
	require.Error(t, err)

	var nf *core.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Empty(t, rec.Events)
}

func TestRunMST(t *testing.T) {
	for _, kind := range []string{"prim", "kruskal"} {
		out, err := engine.RunMST(context.Background(), kind, scenario(t))
		require.NoError(t, err, kind)
		assert.Equal(t, int64(4), out.TotalCost, kind)
		assert.Len(t, out.CommittedEdges, 3, kind)
	}

	out, err := engine.RunMST(context.Background(), "kruskal", scenario(t), engine.WithExhaustiveScan())
	require.NoError(t, err)
	require.Len(t, out.Rejected, 1)
	assert.Equal(t, "A-C(4)", out.Rejected[0].String())
}

func TestUnknownKind(t *testing.T) {
	_, err := engine.RunSort(context.Background(), "quick", []int64{1})
	assert.ErrorIs(t, err, engine.ErrUnknownKind)
	_, err = engine.RunTraversal(context.Background(), "astar", scenario(t), "A")
	assert.ErrorIs(t, err, engine.ErrUnknownKind)
	_, err = engine.RunMST(context.Background(), "boruvka", scenario(t))
	assert.ErrorIs(t, err, engine.ErrUnknownKind)
}

func TestCancelledHandle(t *testing.T) {
	h := trace.NewRunHandle()
	h.Cancel()
	rec := &trace.Recorder{}

	out, err := engine.RunSort(context.Background(), "merge", []int64{3, 2, 1},
		engine.WithHandle(h), engine.WithSink(rec.Sink()))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusAborted, out.Status)
	assert.Equal(t, []int64{3, 2, 1}, out.Result)
	assert.Empty(t, rec.Events)
}

func TestCancelledContextDuringPacing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	out, err := engine.RunMST(ctx, "prim", scenario(t), engine.WithDelay(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusAborted, out.Status)
	assert.Equal(t, 1, out.Events)
}

func TestNegativeDelay(t *testing.T) {
	_, err := engine.RunSort(context.Background(), "bubble", []int64{2, 1}, engine.WithDelay(-time.Millisecond))
	assert.ErrorIs(t, err, trace.ErrNegativeDelay)
}

func TestBusyGraph(t *testing.T) {
	g := scenario(t)
	require.True(t, g.TryAcquire())
	defer g.Release()

	_, err := engine.RunTraversal(context.Background(), "bfs", g, "A")
	assert.ErrorIs(t, err, trace.ErrRunInProgress)
}

func TestLoggingAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = engine.RunSort(context.Background(), "insertion", []int64{2, 1},
		engine.WithLogger(logger), engine.WithMetrics(m))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "run finished")
	assert.Contains(t, buf.String(), "algorithm=insertion")
	assert.Contains(t, buf.String(), "status=completed")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["stepwise_events_total"])
	assert.True(t, names["stepwise_runs_total"])
	assert.True(t, names["stepwise_run_seconds"])
}
