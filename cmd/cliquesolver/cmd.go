package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/bbmc/maxclique/cliquecfg"
	"github.com/bbmc/maxclique/colour"
	"github.com/bbmc/maxclique/dimacs"
	"github.com/bbmc/maxclique/driver"
	"github.com/spf13/cobra"
)

// run builds and executes the root command against args, writing to stdout,
// and returns the process exit code: 0 on success, non-zero on parse or
// usage error. Factored out of main so tests can drive it without an
// os.Exit call.
func run(args []string) int {
	cmd := newRootCmd(os.Stdout)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		timeoutSeconds int
		sortingFlag    string
		parallelFor    bool
		workers        int
		prime          uint32
		decide         uint32
	)

	cmd := &cobra.Command{
		Use:   "cliquesolver [--timeout SECONDS] FILE",
		Short: "Find a maximum clique in a DIMACS graph file",
		Long: `cliquesolver reads an undirected simple graph in DIMACS format and
searches for a maximum clique using bit-parallel branch-and-bound with
greedy colouring bounds.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := parseSortingVariant(sortingFlag)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("cliquesolver: %w", err)
			}
			defer f.Close()

			g, err := dimacs.Parse(f)
			if err != nil {
				return err
			}

			abort := new(atomic.Bool)
			opts := cliquecfg.New(
				cliquecfg.WithSorting(variant),
				cliquecfg.WithParallelFor(parallelFor),
				cliquecfg.WithWorkers(workers),
				cliquecfg.WithPrime(prime),
				cliquecfg.WithDecide(decide),
				cliquecfg.WithAbort(abort),
				cliquecfg.WithProgressWriter(out),
			)

			aborted := func() bool { return false }
			if timeoutSeconds > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
				defer cancel()
				aborted = watchTimeout(ctx, abort)
			}

			start := time.Now()
			res, err := driver.Solve(g, opts)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}

			printReport(out, res, aborted(), elapsed)
			return nil
		},
	}

	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "abort the search after this many seconds (0 disables the watchdog)")
	cmd.Flags().StringVar(&sortingFlag, "sorting", "no_sorting", "colour-class ordering: no_sorting, defer1, full_sort")
	cmd.Flags().BoolVar(&parallelFor, "parallel-for", false, "use parallel-for scheduling instead of spawn-per-branch when workers > 1")
	cmd.Flags().IntVar(&workers, "workers", 1, "number of concurrently running search branches (1 = sequential)")
	cmd.Flags().Uint32Var(&prime, "prime", 0, "initial incumbent size; only cliques strictly larger are reported")
	cmd.Flags().Uint32Var(&decide, "decide", 0, "stop as soon as a clique of at least this size is found (0 disables)")

	return cmd
}

// watchTimeout starts a goroutine that flips abort once ctx is done and
// returns a function reporting whether that happened. It replaces the
// original solver's condition-variable watchdog thread with ctx.Done(), Go's
// native wait/signal primitive.
func watchTimeout(ctx context.Context, abort *atomic.Bool) func() bool {
	fired := new(atomic.Bool)
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		abort.Store(true)
		fired.Store(true)
	}()
	return func() bool {
		select {
		case <-done:
		default:
		}
		return fired.Load()
	}
}

// printReport writes the three-line post-run report: size/nodes[/aborted],
// the clique vertices (1-indexed, as numbered in the DIMACS file), and the
// elapsed milliseconds.
func printReport(out io.Writer, res driver.Result, aborted bool, elapsed time.Duration) {
	clique := append([]int(nil), res.Clique...)
	sort.Ints(clique)

	if aborted {
		fmt.Fprintf(out, "%d %d aborted\n", len(clique), res.Nodes)
	} else {
		fmt.Fprintf(out, "%d %d\n", len(clique), res.Nodes)
	}

	for i, v := range clique {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, v+1)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, elapsed.Milliseconds())
}

func parseSortingVariant(s string) (colour.Variant, error) {
	switch s {
	case "no_sorting":
		return colour.NoSorting, nil
	case "defer1":
		return colour.Defer1, nil
	case "full_sort":
		return colour.FullSort, nil
	default:
		return 0, fmt.Errorf("cliquesolver: unknown --sorting value %q (want no_sorting, defer1, or full_sort)", s)
	}
}
