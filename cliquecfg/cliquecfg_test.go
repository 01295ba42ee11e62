package cliquecfg_test

import (
	"testing"

	"github.com/bbmc/maxclique/cliquecfg"
	"github.com/bbmc/maxclique/colour"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	o := cliquecfg.New()
	require.Equal(t, colour.NoSorting, o.Sorting)
	require.False(t, o.ParallelFor)
	require.GreaterOrEqual(t, o.Workers, 1)
	require.Equal(t, uint32(0), o.Prime)
	require.Equal(t, uint32(0), o.Decide)
	require.NotNil(t, o.Abort)
	require.False(t, o.Abort.Load())
}

func TestNew_OptionsApplyInOrder(t *testing.T) {
	o := cliquecfg.New(
		cliquecfg.WithSorting(colour.FullSort),
		cliquecfg.WithParallelFor(true),
		cliquecfg.WithWorkers(4),
		cliquecfg.WithPrime(3),
		cliquecfg.WithDecide(10),
	)
	require.Equal(t, colour.FullSort, o.Sorting)
	require.True(t, o.ParallelFor)
	require.Equal(t, 4, o.Workers)
	require.Equal(t, uint32(3), o.Prime)
	require.Equal(t, uint32(10), o.Decide)
}

func TestNew_WorkersBelowOneForcesSequential(t *testing.T) {
	o := cliquecfg.New(cliquecfg.WithWorkers(0))
	require.Equal(t, 1, o.Workers)
}
