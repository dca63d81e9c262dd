package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/stepwise/bfs"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dfs"
	"github.com/katalvlaran/stepwise/dijkstra"
	pk "github.com/katalvlaran/stepwise/prim_kruskal"
	"github.com/katalvlaran/stepwise/sorting"
	"github.com/katalvlaran/stepwise/trace"
)

// Traversal and MST algorithm names.
const (
	KindBFS      = "bfs"
	KindDFS      = "dfs"
	KindDijkstra = "dijkstra"
	KindPrim     = pk.MethodPrim
	KindKruskal  = pk.MethodKruskal
)

// SortOutcome is the result of RunSort.
type SortOutcome struct {
	Status      trace.Status `json:"status"`
	Result      []int64      `json:"result"`  // array content when the run ended
	Origins     []int        `json:"origins"` // input index of the element in each slot
	Comparisons int          `json:"comparisons"`
	Swaps       int          `json:"swaps"`
	Events      int          `json:"events"`
}

// TraversalOutcome is the result of RunTraversal.
type TraversalOutcome struct {
	Status     trace.Status `json:"status"`
	VisitOrder []string     `json:"visitOrder"`
	// Distances holds the shortest distance of every vertex; set by dijkstra only.
	// Unreached vertices keep dijkstra.Infinity (math.MaxInt64, a valid JSON integer).
	Distances map[string]int64 `json:"distances,omitempty"`
	// Parent maps each reached non-root vertex to its tree predecessor.
	Parent map[string]string `json:"parent"`
	Events int               `json:"events"`
}

// MSTOutcome is the result of RunMST.
type MSTOutcome struct {
	Status         trace.Status `json:"status"`
	CommittedEdges []core.Edge  `json:"committedEdges"`
	Rejected       []core.Edge  `json:"rejected,omitempty"`
	TotalCost      int64        `json:"totalCost"`
	Events         int          `json:"events"`
}

// run carries one invocation: resolved options, its trace and timing.
type run struct {
	opts      Options
	family    Family
	algorithm string
	tr        *trace.Trace
	started   time.Time
}

func newRun(ctx context.Context, family Family, algorithm string, opts []Option) *run {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	topts := []trace.Option{
		trace.WithContext(ctx),
		trace.WithSink(o.Sink),
		trace.WithHandle(o.Handle),
		trace.WithDelay(o.Delay),
		trace.WithLogger(o.Logger),
	}
	if o.Metrics != nil {
		topts = append(topts, trace.WithObserver(o.Metrics))
	}

	return &run{
		opts:      o,
		family:    family,
		algorithm: algorithm,
		tr:        trace.New(topts...),
		started:   time.Now(),
	}
}

// finish logs and counts a run that produced a result.
func (r *run) finish(status trace.Status) {
	elapsed := time.Since(r.started)
	r.opts.Logger.Info("run finished",
		"family", string(r.family),
		"algorithm", r.algorithm,
		"status", string(status),
		"events", r.tr.Count(),
		"elapsed", elapsed,
	)
	if r.opts.Metrics != nil {
		r.opts.Metrics.RunFinished(string(r.family), r.algorithm, status, elapsed)
	}
}

// fail logs a run that was rejected before or while running.
func (r *run) fail(err error) error {
	r.opts.Logger.Warn("run failed",
		"family", string(r.family),
		"algorithm", r.algorithm,
		"err", err,
	)

	return err
}

// RunSort sorts a copy of input with the named algorithm.
func RunSort(ctx context.Context, kind string, input []int64, opts ...Option) (*SortOutcome, error) {
	k, err := sorting.ParseKind(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownKind, err)
	}
	r := newRun(ctx, FamilySort, string(k), opts)
	res, err := sorting.Sort(core.NewArray(input), k, r.tr)
	if err != nil {
		return nil, r.fail(err)
	}
	r.finish(res.Status)

	return &SortOutcome{
		Status:      res.Status,
		Result:      res.Values,
		Origins:     res.Origins,
		Comparisons: res.Comparisons,
		Swaps:       res.Swaps,
		Events:      r.tr.Count(),
	}, nil
}

// RunTraversal walks g from start with bfs, dfs or dijkstra.
func RunTraversal(ctx context.Context, kind string, g *core.Graph, start string, opts ...Option) (*TraversalOutcome, error) {
	name := strings.ToLower(strings.TrimSpace(kind))
	switch name {
	case KindBFS, KindDFS, KindDijkstra:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	r := newRun(ctx, FamilyTraverse, name, opts)

	var out *TraversalOutcome
	switch name {
	case KindBFS:
		res, err := bfs.BFS(g, start, r.tr)
		if err != nil {
			return nil, r.fail(err)
		}
		out = &TraversalOutcome{Status: res.Status, VisitOrder: res.Order, Parent: res.Parent}
	case KindDFS:
		res, err := dfs.DFS(g, start, r.tr)
		if err != nil {
			return nil, r.fail(err)
		}
		out = &TraversalOutcome{Status: res.Status, VisitOrder: res.Order, Parent: res.Parent}
	case KindDijkstra:
		res, err := dijkstra.Dijkstra(g, start, r.tr)
		if err != nil {
			return nil, r.fail(err)
		}
		out = &TraversalOutcome{
			Status:     res.Status,
			VisitOrder: res.Order,
			Distances:  res.Dist,
			Parent:     res.Prev,
		}
	}
	out.Events = r.tr.Count()
	r.finish(out.Status)

	return out, nil
}

// RunMST computes a minimum spanning forest of g with prim or kruskal.
func RunMST(ctx context.Context, kind string, g *core.Graph, opts ...Option) (*MSTOutcome, error) {
	name := strings.ToLower(strings.TrimSpace(kind))
	if name != KindPrim && name != KindKruskal {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	r := newRun(ctx, FamilyMST, name, opts)
	popts := []pk.Option{pk.WithMethod(name)}
	if r.opts.ExhaustiveScan {
		popts = append(popts, pk.WithExhaustiveScan())
	}
	res, err := pk.Compute(g, r.tr, popts...)
	if err != nil {
		return nil, r.fail(err)
	}
	r.finish(res.Status)

	return &MSTOutcome{
		Status:         res.Status,
		CommittedEdges: res.Edges,
		Rejected:       res.Rejected,
		TotalCost:      res.TotalCost,
		Events:         r.tr.Count(),
	}, nil
}
