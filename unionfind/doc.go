// Package unionfind implements the disjoint-set structure used by Kruskal's
// minimum spanning forest: string-keyed elements, union by rank and full path
// compression on Find (iterative, two passes).
//
// Complexity:
//
//   - Find, Union, Connected: amortized O(α(n)).
//   - Sets: O(n log n) for the sorted snapshot.
//
// Elements unknown to the structure are added lazily as singletons on first
// use, so callers may start from an empty UnionFind.
package unionfind
