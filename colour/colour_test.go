package colour_test

import (
	"testing"

	"github.com/bbmc/maxclique/bitgraph"
	"github.com/bbmc/maxclique/bitset"
	"github.com/bbmc/maxclique/colour"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns K_3 on vertices {0,1,2}.
func buildTriangle() *bitgraph.Graph {
	g := bitgraph.New(3, 1)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	return g
}

// buildEmpty returns an edgeless graph on n vertices (all one colour class).
func buildEmpty(n int) *bitgraph.Graph {
	return bitgraph.New(n, 1)
}

func candidateSet(n int) *bitset.Set {
	p := bitset.New(1)
	p.SetUpTo(n)
	return p
}

func nonDecreasing(t *testing.T, bounds []int, k int) {
	t.Helper()
	for i := 1; i < k; i++ {
		require.LessOrEqual(t, bounds[i-1], bounds[i])
	}
}

func TestOrder_NoSorting_Triangle(t *testing.T) {
	g := buildTriangle()
	p := candidateSet(3)
	order := make([]int, 3)
	bounds := make([]int, 3)

	k := colour.Order(colour.NoSorting, g, p, order, bounds)
	require.Equal(t, 3, k)
	nonDecreasing(t, bounds, k)
	// Triangle: every vertex pairwise adjacent -> 3 distinct colours.
	require.Equal(t, 3, bounds[k-1])
}

func TestOrder_NoSorting_EdgelessIsOneColour(t *testing.T) {
	g := buildEmpty(5)
	p := candidateSet(5)
	order := make([]int, 5)
	bounds := make([]int, 5)

	k := colour.Order(colour.NoSorting, g, p, order, bounds)
	require.Equal(t, 5, k)
	for i := 0; i < k; i++ {
		require.Equal(t, 1, bounds[i])
	}
}

func TestOrder_Defer1_SingletonColoursDeferredToTail(t *testing.T) {
	// Star graph: centre 0 adjacent to 1,2,3. Base colouring on {0,1,2,3}
	// (FirstSet order) colours 0 alone (colour 1, size 1) then 1,2,3 share
	// colour 2 (mutually non-adjacent leaves). No singleton beyond that, so
	// defer1 only retracts colour 1's single vertex.
	g := bitgraph.New(4, 1)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)

	p := candidateSet(4)
	order := make([]int, 4)
	bounds := make([]int, 4)

	k := colour.Order(colour.Defer1, g, p, order, bounds)
	require.Equal(t, 4, k)
	nonDecreasing(t, bounds, k)
	// Deferred vertex (0) must land at the tail with its own fresh colour:
	// one main-loop colour survives retraction (leaves 1,2,3), then the
	// flush assigns the deferred vertex the next colour, 2.
	require.Equal(t, 0, order[k-1])
	require.Equal(t, 2, bounds[k-1])
}

func TestOrder_FullSort_LargerClassesFirst(t *testing.T) {
	// Path 0-1-2: colouring produces classes {0,2} (colour A) and {1}
	// (colour B) under the base algorithm. FullSort must place the larger
	// class ({0,2}, size 2) before the smaller one in colour order.
	g := bitgraph.New(3, 1)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	p := candidateSet(3)
	order := make([]int, 3)
	bounds := make([]int, 3)

	k := colour.Order(colour.FullSort, g, p, order, bounds)
	require.Equal(t, 3, k)
	nonDecreasing(t, bounds, k)
	// The size-2 class occupies colour 1 (positions 0-1); vertex 1 (the
	// size-1 class) is colour 2, at the end.
	require.Equal(t, 1, bounds[0])
	require.Equal(t, 1, bounds[1])
	require.Equal(t, 2, bounds[2])
	require.Equal(t, 1, order[2])
}

func TestOrder_ColourClassesAreIndependentSets(t *testing.T) {
	g := buildTriangle()
	p := candidateSet(3)
	order := make([]int, 3)
	bounds := make([]int, 3)

	for _, v := range []colour.Variant{colour.NoSorting, colour.Defer1, colour.FullSort} {
		k := colour.Order(v, g, p, order, bounds)
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if bounds[i] == bounds[j] {
					require.False(t, g.Row(order[i]).Test(order[j]),
						"vertices %d and %d share colour %d but are adjacent", order[i], order[j], bounds[i])
				}
			}
		}
	}
}
