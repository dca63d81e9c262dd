package dfs

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph // underlying graph
	tr      *trace.Trace
	opts    DFSOptions // traversal options
	res     *DFSResult // result collector
	visited map[string]bool
	path    []string // active path, mirrors the recursion
}

// DFS performs depth-first traversal of g from startID, reporting visit,
// edge-commit and edge-explore events on tr and closing a completed run
// with done (Value = number of visited vertices). With WithFullTraversal
// the remaining components are traversed afterwards in insertion order.
//
// A missing start yields an error matching both ErrStartVertexNotFound and
// *core.NotFoundError, with no event. An empty graph completes immediately.
func DFS(g *core.Graph, startID string, tr *trace.Trace, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if tr == nil {
		return nil, ErrNilTrace
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	vertices := g.Vertices()
	if len(vertices) > 0 && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, &core.NotFoundError{ID: startID})
	}
	if !g.TryAcquire() {
		return nil, fmt.Errorf("%w: %w", trace.ErrRunInProgress, core.ErrGraphBusy)
	}
	defer g.Release()
	if err := tr.Begin("traverse/dfs"); err != nil {
		return nil, err
	}

	// 4. Initialize result with capacity hint
	n := len(vertices)
	w := &dfsWalker{
		graph: g,
		tr:    tr,
		opts:  dopts,
		res: &DFSResult{
			Order:  make([]string, 0, n),
			Finish: make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
		visited: make(map[string]bool, n),
		path:    make([]string, 0, n),
	}

	// 5. Traverse: start tree, then the rest of the forest if requested
	var err error
	if n > 0 {
		err = w.root(startID)
		if dopts.FullTraversal {
			for _, v := range vertices {
				if err != nil {
					break
				}
				if !w.visited[v] {
					err = w.root(v)
				}
			}
		}
		if err == nil {
			err = tr.Emit(trace.Done(int64(len(w.res.Order))))
		}
	}
	status, err := trace.Outcome(err)
	tr.End(status)
	if err != nil {
		return nil, err
	}
	w.res.Status = status

	return w.res, nil
}

// root starts a DFS tree at id.
func (w *dfsWalker) root(id string) error {
	w.push(id, 0)

	return w.traverse(id, "", core.Edge{}, 0)
}

func (w *dfsWalker) push(id string, depth int) {
	w.path = append(w.path, id)
	if len(w.path) > w.res.MaxStack {
		w.res.MaxStack = len(w.path)
	}
	if w.opts.OnPush != nil {
		w.opts.OnPush(id, depth)
	}
}

func (w *dfsWalker) pop() {
	id := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	if w.opts.OnPop != nil {
		w.opts.OnPop(id)
	}
}

// traverse visits id, already pushed on the active path, and recurses into
// each unvisited neighbor. id is popped on every exit path.
func (w *dfsWalker) traverse(id, parent string, via core.Edge, depth int) error {
	defer w.pop()

	// 1. A visited vertex is a no-op backtrack
	if w.visited[id] {
		return nil
	}

	// 2. Mark visited, record, and report
	err := w.tr.Commit(trace.Visit(id, int64(depth)), func() {
		w.visited[id] = true
		w.res.Order = append(w.res.Order, id)
		w.res.Depth[id] = depth
	})
	if err != nil {
		return err
	}
	if parent != "" {
		err = w.tr.Commit(trace.EdgeCommit(parent, id, via.ID, via.Weight), func() {
			w.res.Parent[id] = parent
		})
		if err != nil {
			return err
		}
	}

	// 3. Depth limit: do not descend further
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		w.res.Finish = append(w.res.Finish, id)
		return nil
	}

	// 4. Explore each neighbor in adjacency order
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		if w.visited[nb.ID] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb.ID) {
			continue
		}
		if err = w.tr.Emit(trace.EdgeExplore(id, nb.ID, nb.Edge.ID, nb.Weight)); err != nil {
			return err
		}
		w.push(nb.ID, depth+1)
		if err = w.traverse(nb.ID, id, nb.Edge, depth+1); err != nil {
			return err
		}
	}

	// 5. Record finish order
	w.res.Finish = append(w.res.Finish, id)

	return nil
}
