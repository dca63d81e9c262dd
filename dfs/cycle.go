package dfs

import (
	"github.com/katalvlaran/stepwise/core"
)

// HasCycle reports whether the undirected graph g contains a cycle and, if
// so, returns one witness cycle closed on its first vertex, e.g. [A B C A].
// It uses three-color marking; the edge back to the DFS parent is not a
// cycle. Nil graphs yield ErrGraphNil.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle(g *core.Graph) (bool, []string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))

	var visit func(id, parent string) ([]string, error)
	visit = func(id, parent string) ([]string, error) {
		state[id] = Gray
		path = append(path, id)
		nbs, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			if nb.ID == parent {
				continue
			}
			switch state[nb.ID] {
			case White:
				if cyc, err := visit(nb.ID, id); cyc != nil || err != nil {
					return cyc, err
				}
			case Gray:
				// back edge: the cycle is the path segment from nb.ID to id
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == nb.ID {
						cyc := append([]string(nil), path[i:]...)
						return append(cyc, nb.ID), nil
					}
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = Black

		return nil, nil
	}

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		cyc, err := visit(v, "")
		if err != nil {
			return false, nil, err
		}
		if cyc != nil {
			return true, cyc, nil
		}
	}

	return false, nil, nil
}
