// Package bitgraph is the adjacency-matrix representation consumed by the
// search engine: N rows, each a bitset.Set, with AddEdge populating both
// directions and two row operations — IntersectRow (neighbours) and
// IntersectRowComplement (non-neighbours) — used to restrict a candidate
// set during the branch-and-bound search and during greedy colouring.
//
// Lifetime: built once during driver setup from the reordered edge list,
// read-only for the remainder of the search.
package bitgraph

import "github.com/bbmc/maxclique/bitset"

// Graph is a square, symmetric adjacency matrix over [0, N) stored as one
// bitset.Set row per vertex. The diagonal is always clear: self-adjacency
// is never represented.
type Graph struct {
	n    int
	rows []*bitset.Set
}

// New returns a Graph over n vertices with no edges. words is the word
// count for each row's backing bitset.Set (typically the smallest width
// that fits n, per the driver's width selection).
func New(n, words int) *Graph {
	rows := make([]*bitset.Set, n)
	for i := range rows {
		rows[i] = bitset.New(words)
	}
	return &Graph{n: n, rows: rows}
}

// Size returns the number of vertices.
func (g *Graph) Size() int { return g.n }

// AddEdge sets the u-th bit of row v and the v-th bit of row u. Idempotent:
// adding the same edge twice leaves the matrix unchanged. u == v is a no-op
// by construction (the caller's DIMACS/graph validation rejects self-loops
// before this is ever reached).
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	g.rows[u].Set(v)
	g.rows[v].Set(u)
}

// Row returns the adjacency row for vertex v. Callers must not mutate the
// returned Set; it is shared, read-only state for the lifetime of the
// search.
func (g *Graph) Row(v int) *bitset.Set { return g.rows[v] }

// IntersectRow computes b &= row[v]: restricts b to neighbours of v.
func (g *Graph) IntersectRow(v int, b *bitset.Set) {
	b.And(g.rows[v])
}

// IntersectRowComplement computes b &= ^row[v]: restricts b to
// non-neighbours of v (used by the greedy colouring to grow a colour
// class, which must remain an independent set).
func (g *Graph) IntersectRowComplement(v int, b *bitset.Set) {
	b.AndNot(g.rows[v])
}
