// Package driver assembles the bit-parallel search engine into a single
// entry point: reorder vertices by degree, build the bitgraph in the
// reordered coordinate space, seed the incumbent, run the search, then
// translate the result back to the caller's original vertex IDs.
package driver

import (
	"errors"
	"fmt"

	"github.com/bbmc/maxclique/bitgraph"
	"github.com/bbmc/maxclique/cliquecfg"
	"github.com/bbmc/maxclique/engine"
	"github.com/bbmc/maxclique/reorder"
)

// MaxVertices bounds the vertex count this solver will accept. Beyond this,
// exceeding the supported bit-graph width is a configuration error, not a
// runtime failure mode to recover from: callers planning to search graphs
// near this bound should simply raise it, not expect a degraded or partial
// run.
const MaxVertices = 1 << 20

// ErrCapacityExceeded is returned when the input graph's vertex count
// exceeds MaxVertices.
var ErrCapacityExceeded = errors.New("driver: vertex count exceeds supported capacity")

// Graph is the solver's input: size N and, for each vertex, its unordered
// set of neighbour IDs. The caller (typically dimacs.Parse) guarantees it
// is undirected, simple, and symmetric: for every edge {u,v} both
// Neighbors[u] and Neighbors[v] list the other endpoint, and no vertex
// lists itself.
type Graph struct {
	Size      int
	Neighbors [][]int
}

// Result is the solver's output: the maximum clique found, as original
// vertex IDs, and the total number of expand invocations performed.
type Result struct {
	Clique []int
	Nodes  uint64
}

// Solve runs the full pipeline over g under opts: reorder by degree, build
// the bitgraph, seed the incumbent from opts.Prime, run the search, and
// translate the result back through the reorder permutation.
func Solve(g Graph, opts cliquecfg.Options) (Result, error) {
	if g.Size > MaxVertices {
		return Result{}, fmt.Errorf("driver: N=%d: %w", g.Size, ErrCapacityExceeded)
	}
	if g.Size == 0 {
		return Result{}, nil
	}

	degrees := make([]int, g.Size)
	for v, nbrs := range g.Neighbors {
		degrees[v] = len(nbrs)
	}
	perm := reorder.Compute(degrees)

	words := (g.Size + 63) / 64
	if words < 1 {
		words = 1
	}
	bg := bitgraph.New(g.Size, words)
	for u, nbrs := range g.Neighbors {
		iu := perm.InvOrder[u]
		for _, v := range nbrs {
			bg.AddEdge(iu, perm.InvOrder[v])
		}
	}

	res := engine.Search(bg, opts)

	clique := make([]int, len(res.Clique))
	for i, internalID := range res.Clique {
		clique[i] = perm.Order[internalID]
	}

	return Result{Clique: clique, Nodes: res.Nodes}, nil
}
