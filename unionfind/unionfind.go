package unionfind

import "sort"

// UnionFind partitions string IDs into disjoint sets.
// It is not safe for concurrent use; an engine run owns its instance.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
	order  []string
	sets   int
}

// New returns a UnionFind holding each id as a singleton set.
// Duplicate ids are ignored.
func New(ids ...string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.add(id)
	}

	return uf
}

func (uf *UnionFind) add(id string) {
	if _, ok := uf.parent[id]; ok {
		return
	}
	uf.parent[id] = id
	uf.rank[id] = 0
	uf.order = append(uf.order, id)
	uf.sets++
}

// Find returns the representative of id's set.
func (uf *UnionFind) Find(id string) string {
	uf.add(id)
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// second pass: compress the whole path onto root
	for id != root {
		next := uf.parent[id]
		uf.parent[id] = root
		id = next
	}

	return root
}

// Union merges the sets of a and b by rank. It returns false when a and b
// were already in the same set.
func (uf *UnionFind) Union(a, b string) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.sets--

	return true
}

// Connected reports whether a and b share a set.
func (uf *UnionFind) Connected(a, b string) bool {
	return uf.Find(a) == uf.Find(b)
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.order) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.sets }

// Sets returns every set with members in insertion order; sets are ordered
// by their first-inserted member.
func (uf *UnionFind) Sets() [][]string {
	byRoot := make(map[string][]string, uf.sets)
	first := make(map[string]int, uf.sets)
	for i, id := range uf.order {
		r := uf.Find(id)
		if _, ok := first[r]; !ok {
			first[r] = i
		}
		byRoot[r] = append(byRoot[r], id)
	}
	out := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool {
		return first[uf.Find(out[i][0])] < first[uf.Find(out[j][0])]
	})

	return out
}
