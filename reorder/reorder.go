// Package reorder computes the degree-based vertex permutation the driver
// uses before building the bitgraph: vertices are placed in non-increasing
// degree order, with a fixed low-original-ID-first tie-break, so that the
// search tree shape (and hence node counts) is reproducible across runs.
//
// The sort direction reproduces an idiom from the original source exactly:
// a C++ comparator of the form `true ^ (a < b || (a == b && a > b...))`
// used in place of a plain `!(...)` negation. The observable behaviour is
// "higher degree first; among equal degrees, lower original ID first" —
// reproduced here as a direct comparator rather than the XOR idiom, since
// Go has no equivalent micro-optimisation to preserve and the point of the
// idiom was only to select this exact order.
package reorder

import "sort"

// Permutation is the pair of arrays satisfying order[invorder[u]] == u for
// every original vertex ID u, and vice versa.
type Permutation struct {
	Order    []int // Order[rank] = original vertex ID placed at internal rank
	InvOrder []int // InvOrder[originalID] = internal rank
}

// Compute returns the Permutation for a graph with the given per-vertex
// degrees (indexed by original vertex ID). Sort key: descending degree,
// ascending original ID among ties.
func Compute(degrees []int) Permutation {
	n := len(degrees)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if degrees[a] != degrees[b] {
			return degrees[a] > degrees[b] // higher degree first
		}
		return a < b // lower original ID first among ties
	})

	invorder := make([]int, n)
	for rank, id := range order {
		invorder[id] = rank
	}

	return Permutation{Order: order, InvOrder: invorder}
}
