// Package colour implements the three greedy colour-class ordering
// variants used by the search engine to compute, at each recursion level,
// a branching order (p_order) paired with a non-decreasing upper-bound
// witness (p_bounds): p_bounds[i] is the colour number assigned to
// p_order[i], and since vertices sharing a colour form an independent set,
// it is also an upper bound on the chromatic number — and hence on the
// clique number — of the candidate-set prefix ending at position i.
//
// All three variants share the same base greedy sequential colouring
// (repeatedly peel a maximal independent subset of the remaining
// candidates); they differ only in how that raw colouring is reshaped
// before being written out, trading a little extra work per node for a
// tighter bound and a smaller search tree.
package colour

import (
	"sort"

	"github.com/bbmc/maxclique/bitgraph"
	"github.com/bbmc/maxclique/bitset"
)

// Variant selects which colour-class ordering to compute.
type Variant int

const (
	// NoSorting performs the base greedy colouring with no post-processing:
	// vertices appear grouped by colour, increasing FirstSet order within
	// a colour.
	NoSorting Variant = iota

	// Defer1 is NoSorting, except any colour class that ends up with
	// exactly one vertex is retracted and flushed to the tail of the
	// output, each such vertex receiving its own fresh colour. Clusters of
	// singletons at the high (first-branched) end give tighter pruning.
	Defer1

	// FullSort builds every colour class in full before linearising,
	// stable-sorts the classes by non-increasing size, then assigns
	// colours 1..k in that order. Larger classes take the low colours at
	// the start of the order, which the search branches on last.
	FullSort
)

// Order fills pOrder and pBounds (each must have capacity >= p.Popcount())
// according to variant, and returns k = p.Popcount(), the number of valid
// entries written. p is not mutated.
//
// Invariant: pBounds[0:k] is non-decreasing; pBounds[k-1] equals the total
// number of colours used; vertices sharing pBounds[i] are pairwise
// non-adjacent in g.
func Order(variant Variant, g *bitgraph.Graph, p *bitset.Set, pOrder, pBounds []int) int {
	switch variant {
	case Defer1:
		return orderDefer1(g, p, pOrder, pBounds)
	case FullSort:
		return orderFullSort(g, p, pOrder, pBounds)
	default:
		return orderNoSorting(g, p, pOrder, pBounds)
	}
}

// orderNoSorting is the base greedy sequential colouring described in the
// package doc: repeatedly pick the lowest-indexed remaining vertex, give it
// the current colour, then strip its neighbours from the candidates for
// that colour before moving to the next uncoloured vertex.
func orderNoSorting(g *bitgraph.Graph, p *bitset.Set, pOrder, pBounds []int) int {
	pLeft := p.Clone()
	colour := 0
	i := 0

	for !pLeft.Empty() {
		colour++
		q := pLeft.Clone()

		for !q.Empty() {
			v := q.FirstSet()
			pLeft.Clear(v)
			q.Clear(v)

			g.IntersectRowComplement(v, q)

			pBounds[i] = colour
			pOrder[i] = v
			i++
		}
	}

	return i
}

// orderDefer1 runs the same greedy colouring as orderNoSorting, but tracks
// the size of the colour class being built; if it ends with exactly one
// member, that member is retracted and deferred to a trailing pass where
// every deferred vertex gets its own fresh colour.
func orderDefer1(g *bitgraph.Graph, p *bitset.Set, pOrder, pBounds []int) int {
	pLeft := p.Clone()
	colour := 0
	i := 0

	defer_ := make([]int, 0, p.Popcount())

	for !pLeft.Empty() {
		colour++
		q := pLeft.Clone()

		numWithThisColour := 0
		for !q.Empty() {
			v := q.FirstSet()
			pLeft.Clear(v)
			q.Clear(v)

			g.IntersectRowComplement(v, q)

			pBounds[i] = colour
			pOrder[i] = v
			i++
			numWithThisColour++
		}

		if numWithThisColour == 1 {
			i--
			colour--
			defer_ = append(defer_, pOrder[i])
		}
	}

	for _, v := range defer_ {
		colour++
		pOrder[i] = v
		pBounds[i] = colour
		i++
	}

	return i
}

// orderFullSort builds the full list of colour classes before writing
// anything out, stable-sorts them by non-increasing size, then flattens
// into pOrder/pBounds with colours assigned 1..k in that (size-sorted)
// order.
func orderFullSort(g *bitgraph.Graph, p *bitset.Set, pOrder, pBounds []int) int {
	pLeft := p.Clone()
	var classes [][]int

	for !pLeft.Empty() {
		q := pLeft.Clone()
		var class []int

		for !q.Empty() {
			v := q.FirstSet()
			pLeft.Clear(v)
			q.Clear(v)

			g.IntersectRowComplement(v, q)

			class = append(class, v)
		}

		classes = append(classes, class)
	}

	sort.SliceStable(classes, func(i, j int) bool {
		return len(classes[i]) > len(classes[j])
	})

	colour := 0
	i := 0
	for _, class := range classes {
		colour++
		for _, v := range class {
			pOrder[i] = v
			pBounds[i] = colour
			i++
		}
	}

	return i
}
