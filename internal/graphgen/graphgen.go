// Package graphgen builds small, deterministic fixture graphs for the
// solver's own test suite: complete graphs, cycles, disjoint-clique unions,
// bipartite graphs, the Petersen graph, and seeded random sparse/regular
// graphs. Every constructor returns a driver.Graph directly (0-indexed,
// symmetric edge lists) rather than an intermediate graph type, since the
// solver has no other consumer for these fixtures.
//
// Determinism: every constructor produces the same output for the same
// arguments and, for the random ones, the same seed. No global state.
package graphgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/bbmc/maxclique/driver"
)

// ErrTooFewVertices is returned when a constructor's vertex count is below
// the minimum that generator needs to produce a well-formed graph.
var ErrTooFewVertices = errors.New("graphgen: too few vertices")

// ErrInvalidProbability is returned by RandomSparse when p is outside
// [0, 1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrInvalidDegree is returned by RandomRegular when d is outside [0, n)
// or n*d is odd (a d-regular graph on n vertices cannot exist).
var ErrInvalidDegree = errors.New("graphgen: invalid degree for regular graph")

const (
	minCompleteVertices = 1
	minCycleVertices    = 3
	minTriangleGroups   = 1
	maxRegularAttempts  = 100
)

// emptyGraph allocates an n-vertex driver.Graph with no edges yet.
func emptyGraph(n int) driver.Graph {
	return driver.Graph{Size: n, Neighbors: make([][]int, n)}
}

// addEdge records the undirected edge {u,v} in both endpoints' adjacency.
func addEdge(g *driver.Graph, u, v int) {
	g.Neighbors[u] = append(g.Neighbors[u], v)
	g.Neighbors[v] = append(g.Neighbors[v], u)
}

// Complete returns K_n, the graph in which every pair of vertices is
// adjacent.
func Complete(n int) (driver.Graph, error) {
	if n < minCompleteVertices {
		return driver.Graph{}, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	g := emptyGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			addEdge(&g, i, j)
		}
	}
	return g, nil
}

// Cycle returns C_n: vertices 0..n-1 joined i to (i+1)%n.
func Cycle(n int) (driver.Graph, error) {
	if n < minCycleVertices {
		return driver.Graph{}, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	g := emptyGraph(n)
	for i := 0; i < n; i++ {
		addEdge(&g, i, (i+1)%n)
	}
	return g, nil
}

// CycleWithChord returns C_n plus one extra edge {u,v}, for exercising
// colouring bounds tighter than the cycle's own chromatic number.
func CycleWithChord(n, u, v int) (driver.Graph, error) {
	g, err := Cycle(n)
	if err != nil {
		return driver.Graph{}, fmt.Errorf("CycleWithChord: %w", err)
	}
	if u < 0 || u >= n || v < 0 || v >= n || u == v {
		return driver.Graph{}, fmt.Errorf("CycleWithChord: chord (%d,%d) invalid for n=%d", u, v, n)
	}
	addEdge(&g, u, v)
	return g, nil
}

// Petersen returns the Petersen graph: an outer 5-cycle on vertices 0..4, an
// inner 5-cycle (the pentagram) on vertices 5..9 connected as i -> i+2 mod 5,
// and spokes i -> i+5. It is triangle-free with independence number 4 and
// clique number 2.
func Petersen() driver.Graph {
	g := emptyGraph(10)
	for i := 0; i < 5; i++ {
		addEdge(&g, i, (i+1)%5)
		addEdge(&g, 5+i, 5+(i+2)%5)
		addEdge(&g, i, 5+i)
	}
	return g
}

// DisjointTriangles returns k vertex-disjoint triangles (3k vertices, no
// edges between groups), a fixture whose maximum clique is always 3
// regardless of k.
func DisjointTriangles(k int) (driver.Graph, error) {
	if k < minTriangleGroups {
		return driver.Graph{}, fmt.Errorf("DisjointTriangles: k=%d: %w", k, ErrTooFewVertices)
	}
	g := emptyGraph(3 * k)
	for group := 0; group < k; group++ {
		base := 3 * group
		addEdge(&g, base, base+1)
		addEdge(&g, base+1, base+2)
		addEdge(&g, base+2, base)
	}
	return g, nil
}

// Bipartite returns the complete bipartite graph K_{a,b} on parts
// {0..a-1} and {a..a+b-1}. Its clique number is always 2 for a, b >= 1.
func Bipartite(a, b int) (driver.Graph, error) {
	if a < 1 || b < 1 {
		return driver.Graph{}, fmt.Errorf("Bipartite: a=%d b=%d: %w", a, b, ErrTooFewVertices)
	}
	g := emptyGraph(a + b)
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			addEdge(&g, i, a+j)
		}
	}
	return g, nil
}

// RandomSparse samples an Erdős–Rényi-style graph on n vertices, including
// each of the C(n,2) possible edges independently with probability p. The
// same seed always yields the same graph.
func RandomSparse(n int, p float64, seed int64) (driver.Graph, error) {
	if n < minCompleteVertices {
		return driver.Graph{}, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return driver.Graph{}, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	rng := rand.New(rand.NewSource(seed))
	g := emptyGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				addEdge(&g, i, j)
			}
		}
	}
	return g, nil
}

// RandomRegular builds an undirected d-regular simple graph on n vertices
// via stub-matching: shuffle a list containing each vertex d times, pair
// consecutive stubs, and accept the pairing only if it contains no loop or
// repeated edge. Makes up to maxRegularAttempts shuffles in all before
// giving up.
func RandomRegular(n, d int, seed int64) (driver.Graph, error) {
	if n < minCompleteVertices || d < 0 || d >= n || (n*d)%2 != 0 {
		return driver.Graph{}, fmt.Errorf("RandomRegular: n=%d d=%d: %w", n, d, ErrInvalidDegree)
	}
	rng := rand.New(rand.NewSource(seed))

	for attempt := 0; attempt < maxRegularAttempts; attempt++ {
		stubs := make([]int, 0, n*d)
		for v := 0; v < n; v++ {
			for c := 0; c < d; c++ {
				stubs = append(stubs, v)
			}
		}
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		edgeSet := make(map[[2]int]struct{})
		valid := true
		for i := 0; i+1 < len(stubs) && valid; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if _, dup := edgeSet[key]; dup {
				valid = false
				break
			}
			edgeSet[key] = struct{}{}
		}
		if !valid {
			continue
		}

		g := emptyGraph(n)
		for key := range edgeSet {
			addEdge(&g, key[0], key[1])
		}
		return g, nil
	}

	return driver.Graph{}, fmt.Errorf("RandomRegular: n=%d d=%d: no valid pairing after %d attempts",
		n, d, maxRegularAttempts)
}
