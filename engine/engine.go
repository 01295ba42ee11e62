// Package engine implements expand, the recursive branch-and-bound search
// at the heart of the solver: at each node it colours the candidate set P
// to obtain a branching order with a non-decreasing upper-bound witness,
// then walks that order from the high (loosest-bound) end down, pruning
// any suffix that cannot beat the current incumbent.
//
// Three scheduling flavours share the same per-node logic:
//   - Sequential: one goroutine, P mutated in place between iterations.
//   - Spawn-per-branch: each branch body runs as an independent goroutine
//     closing over a snapshot of P taken at spawn time (the parent keeps
//     shrinking its own copy for the next iteration).
//   - Parallel-for: each branch reconstructs its own P by applying the
//     cumulative shrink explicitly, with no shared mutable P at all.
//
// In both parallel flavours every expand node runs its child branches in
// its own errgroup.Group with opts.Workers as its concurrency limit. The
// limit applies per node: nested levels each have their own group, so the
// total number of goroutines across the search tree can exceed
// opts.Workers.
package engine

import (
	"sync/atomic"

	"github.com/bbmc/maxclique/bitgraph"
	"github.com/bbmc/maxclique/bitset"
	"github.com/bbmc/maxclique/cliquecfg"
	"github.com/bbmc/maxclique/colour"
	"github.com/bbmc/maxclique/incumbent"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one Search call: the best clique found
// (internal, reordered vertex IDs — the driver translates these back to
// original IDs) and the total number of expand invocations.
type Result struct {
	Clique []int
	Nodes  uint64
}

// engine bundles the read-only state shared by every node of one search:
// the bitgraph, the resolved options, the incumbent, and the node counter.
// Exactly one engine exists per Search call.
type engine struct {
	graph *bitgraph.Graph
	opts  cliquecfg.Options
	inc   *incumbent.Incumbent
	nodes atomic.Uint64
}

// Search runs expand([], full P) over g under opts and returns the best
// clique found (in g's internal vertex numbering) plus the total node
// count. g's vertex numbering is whatever the caller built it in; the
// driver is responsible for any translation to/from original IDs.
func Search(g *bitgraph.Graph, opts cliquecfg.Options) Result {
	e := &engine{graph: g, opts: opts}
	e.inc = incumbent.New(opts.Prime, &e.nodes, opts.StartTime, opts.ProgressWriter)

	n := g.Size()
	p := bitset.New(wordsFor(n))
	p.SetUpTo(n)

	c := make([]int, 0, n)

	if opts.Workers <= 1 {
		e.expandSequential(c, p)
	} else if opts.ParallelFor {
		e.expandParallelFor(c, p)
	} else {
		e.expandSpawnPerBranch(c, p)
	}

	return Result{
		Clique: e.inc.Vertices(),
		Nodes:  e.nodes.Load(),
	}
}

// wordsFor returns the word count needed to back n bits (at least 1, so a
// zero-vertex graph still gets a usable, empty bitset).
func wordsFor(n int) int {
	w := (n + 63) / 64
	if w < 1 {
		w = 1
	}
	return w
}

// shouldPrune implements the colouring-bound prune: the search may stop
// exploring positions 0..n of the current branching order once no one of
// them can beat the incumbent, or once an external stop condition (decide
// target reached, abort requested) fires.
func (e *engine) shouldPrune(depth int, bound int) bool {
	if uint32(depth)+uint32(bound) <= e.inc.CurrentSize() {
		return true
	}
	if e.opts.Decide > 0 && e.inc.CurrentSize() >= e.opts.Decide {
		return true
	}
	return e.opts.Abort.Load()
}

// expandSequential is the single-goroutine form of expand: one shared,
// shrinking P, iterated from the high end of the branching order down.
func (e *engine) expandSequential(c []int, p *bitset.Set) {
	e.nodes.Add(1)

	k := p.Popcount()
	pOrder := make([]int, k)
	pBounds := make([]int, k)
	colour.Order(e.opts.Sorting, e.graph, p, pOrder, pBounds)

	for n := k - 1; n >= 0; n-- {
		if e.shouldPrune(len(c), pBounds[n]) {
			return
		}

		v := pOrder[n]
		c = append(c, v)

		newP := p.Clone()
		e.graph.IntersectRow(v, newP)

		if newP.Empty() {
			e.inc.Offer(c)
		} else {
			e.expandSequential(c, newP)
		}

		c = c[:len(c)-1]
		p.Clear(v)
	}
}

// expandSpawnPerBranch mirrors the cilk_spawn form: the body of each
// iteration (take v, build P', recurse or offer) runs as an independent
// goroutine closing over a value snapshot of C and of the shrinking P
// taken at spawn time, since the parent keeps mutating its own P for the
// next iteration immediately after spawning. The parent waits for every
// spawned branch (the join barrier) before returning.
func (e *engine) expandSpawnPerBranch(c []int, p *bitset.Set) {
	e.nodes.Add(1)

	k := p.Popcount()
	pOrder := make([]int, k)
	pBounds := make([]int, k)
	colour.Order(e.opts.Sorting, e.graph, p, pOrder, pBounds)

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)

	shrinking := p.Clone()

	for n := k - 1; n >= 0; n-- {
		if e.shouldPrune(len(c), pBounds[n]) {
			break
		}

		v := pOrder[n]

		// Snapshot C and the shrinking P by value before spawning: the
		// task must not observe the parent's subsequent shrink (step 3e).
		cSnap := append([]int(nil), c...)
		cSnap = append(cSnap, v)
		pSnap := shrinking.Clone()

		g.Go(func() error {
			e.graph.IntersectRow(v, pSnap)
			if pSnap.Empty() {
				e.inc.Offer(cSnap)
			} else {
				e.expandSpawnPerBranch(cSnap, pSnap)
			}
			return nil
		})

		// Now consider not taking v, for the remaining iterations on the
		// parent.
		shrinking.Clear(v)
	}

	_ = g.Wait() // join barrier; no task returns a non-nil error
}

// expandParallelFor mirrors the cilk_for form: each branch independently
// reconstructs its own P_i by applying the cumulative shrink explicitly
// (subtracting every vertex that would come after it in the branching
// order), rather than sharing one mutable P across goroutines.
func (e *engine) expandParallelFor(c []int, p *bitset.Set) {
	e.nodes.Add(1)

	k := p.Popcount()
	pOrder := make([]int, k)
	pBounds := make([]int, k)
	colour.Order(e.opts.Sorting, e.graph, p, pOrder, pBounds)

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)

	for n := k - 1; n >= 0; n-- {
		if e.shouldPrune(len(c), pBounds[n]) {
			break
		}

		g.Go(func() error {
			if e.shouldPrune(len(c), pBounds[n]) {
				return nil
			}

			v := pOrder[n]
			pi := p.Clone()
			e.graph.IntersectRow(v, pi)
			for x := k - 1; x > n; x-- {
				pi.Clear(pOrder[x])
			}

			cSnap := append([]int(nil), c...)
			cSnap = append(cSnap, v)

			if pi.Empty() {
				e.inc.Offer(cSnap)
			} else {
				e.expandParallelFor(cSnap, pi)
			}
			return nil
		})
	}

	_ = g.Wait()
}
