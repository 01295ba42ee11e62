// Package maxclique is a bit-parallel branch-and-bound exact solver for the
// maximum clique problem on undirected simple graphs.
//
// What is maxclique?
//
//	A focused, thread-safe solver implementing the MCS/BBMC family of
//	algorithms: greedy graph-colouring bounds drive a depth-first
//	branch-and-bound search over a bitset-backed adjacency representation.
//
// Why this shape?
//
//   - Exact, not approximate — returns an optimum, not a heuristic clique.
//   - Bit-parallel            — the candidate set and every row operation
//     are word-parallel over fixed-width bitsets.
//   - Concurrency-ready       — a lock-free incumbent size and per-node
//     bounded goroutine groups let the search tree parallelise without
//     races on the result.
//
// Everything lives under focused subpackages:
//
//	bitset/    — fixed-capacity word-parallel bit sets
//	bitgraph/  — adjacency matrix as bitset rows
//	reorder/   — degree-based vertex permutation
//	colour/    — greedy colouring bound, three ordering variants
//	incumbent/ — atomic-size, mutex-guarded best clique
//	engine/    — the expand() branch-and-bound search, sequential + parallel
//	driver/    — assembles the above into one Solve call
//	dimacs/    — DIMACS graph file parser
//	cliquecfg/ — functional-option search configuration
//	cmd/cliquesolver/ — CLI entry point
//
//	go get github.com/bbmc/maxclique
package maxclique
