// Package cliquecfg resolves the search's Options from functional
// constructors, using the same defaults-then-apply-in-order functional-option
// shape used elsewhere in this repo.
package cliquecfg

import (
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/bbmc/maxclique/colour"
)

// Options configures one solver run. Construct with New; do not build this
// struct directly, since Abort and StartTime need consistent zero values.
type Options struct {
	// Sorting selects the colour-class ordering variant (colour.Variant).
	Sorting colour.Variant

	// ParallelFor selects the parallel-for scheduling flavour over
	// spawn-per-branch when the search runs in parallel mode (Workers > 1).
	ParallelFor bool

	// Workers bounds, at each search node, the number of concurrently
	// running child branches; the bound is per node, not across the whole
	// search tree. 1 means sequential search (no goroutines are spawned).
	// Defaults to runtime.NumCPU().
	Workers int

	// Prime seeds the incumbent size: the engine will not publish a clique
	// unless strictly larger than Prime.
	Prime uint32

	// Decide, if > 0, stops the search as soon as a clique of at least this
	// size is found (decision-variant early exit).
	Decide uint32

	// Abort is the cooperative cancellation flag polled by every search
	// node. It is always non-nil after New; callers needing external
	// cancellation (a timeout watchdog) should set it via WithAbort or call
	// Abort.Store(true) directly.
	Abort *atomic.Bool

	// StartTime is the wall-clock reference used only for progress-line
	// elapsed-time reporting.
	StartTime time.Time

	// ProgressWriter receives one "-- size nodes elapsed_ms" line per
	// incumbent improvement. Nil (the default) silences progress
	// reporting; the CLI sets this to os.Stdout.
	ProgressWriter io.Writer
}

// Option mutates an Options value during resolution.
type Option func(*Options)

// WithSorting selects the colour-class ordering variant.
func WithSorting(v colour.Variant) Option {
	return func(o *Options) { o.Sorting = v }
}

// WithParallelFor selects the parallel-for scheduling flavour.
func WithParallelFor(enabled bool) Option {
	return func(o *Options) { o.ParallelFor = enabled }
}

// WithWorkers bounds search concurrency. workers <= 1 forces sequential
// search.
func WithWorkers(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithPrime seeds the incumbent size.
func WithPrime(prime uint32) Option {
	return func(o *Options) { o.Prime = prime }
}

// WithDecide sets the decision-variant early-exit target.
func WithDecide(decide uint32) Option {
	return func(o *Options) { o.Decide = decide }
}

// WithAbort installs an externally owned cancellation flag (e.g. a timeout
// watchdog's atomic.Bool), replacing the default private one.
func WithAbort(abort *atomic.Bool) Option {
	return func(o *Options) { o.Abort = abort }
}

// WithProgressWriter sets the destination for incumbent-improvement
// progress lines.
func WithProgressWriter(w io.Writer) Option {
	return func(o *Options) { o.ProgressWriter = w }
}

// New resolves an Options value: defaults (NoSorting colouring,
// spawn-per-branch scheduling with Workers = runtime.NumCPU(), no prime, no
// decision target, fresh Abort flag, StartTime = now), then each opt applied
// in order.
func New(opts ...Option) Options {
	o := Options{
		Sorting:   colour.NoSorting,
		Workers:   runtime.NumCPU(),
		Abort:     new(atomic.Bool),
		StartTime: time.Now(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Abort == nil {
		o.Abort = new(atomic.Bool)
	}
	return o
}
