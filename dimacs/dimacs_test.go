package dimacs_test

import (
	"strings"
	"testing"

	"github.com/bbmc/maxclique/dimacs"
	"github.com/stretchr/testify/require"
)

func TestParse_NoEdges(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("c empty\np edge 5 0\n"))
	require.NoError(t, err)
	require.Equal(t, 5, g.Size)
	for _, nbrs := range g.Neighbors {
		require.Empty(t, nbrs)
	}
}

func TestParse_K4(t *testing.T) {
	src := "c K4\np edge 4 6\ne 1 2\ne 1 3\ne 1 4\ne 2 3\ne 2 4\ne 3 4\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, g.Size)
	for v := 0; v < 4; v++ {
		require.Len(t, g.Neighbors[v], 3)
	}
}

func TestParse_C6PlusChord(t *testing.T) {
	src := "p edge 6 7\ne 1 2\ne 2 3\ne 3 4\ne 4 5\ne 5 6\ne 6 1\ne 1 4\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 6, g.Size)
	require.Len(t, g.Neighbors[0], 3) // vertex 1: neighbours 2, 6, 4
	require.Len(t, g.Neighbors[1], 2)
}

func TestParse_C5(t *testing.T) {
	src := "p edge 5 5\ne 1 2\ne 2 3\ne 3 4\ne 4 5\ne 5 1\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 5, g.Size)
	for v := 0; v < 5; v++ {
		require.Len(t, g.Neighbors[v], 2)
	}
}

func TestParse_Petersen(t *testing.T) {
	// Outer cycle 1-2-3-4-5-1, inner "pentagram" 6-8-10-7-9-6, spokes i-(i+5).
	src := strings.Join([]string{
		"p edge 10 15",
		"e 1 2", "e 2 3", "e 3 4", "e 4 5", "e 5 1",
		"e 6 8", "e 8 10", "e 10 7", "e 7 9", "e 9 6",
		"e 1 6", "e 2 7", "e 3 8", "e 4 9", "e 5 10",
		"",
	}, "\n")
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 10, g.Size)
	for v := 0; v < 10; v++ {
		require.Len(t, g.Neighbors[v], 3)
	}
}

func TestParse_TwoDisjointTriangles(t *testing.T) {
	src := "p edge 6 6\ne 1 2\ne 2 3\ne 3 1\ne 4 5\ne 5 6\ne 6 4\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 6, g.Size)
	for v := 0; v < 6; v++ {
		require.Len(t, g.Neighbors[v], 2)
	}
}

func TestParse_DuplicateEdgeIsIdempotent(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p edge 2 2\ne 1 2\ne 1 2\n"))
	require.NoError(t, err)
	require.Len(t, g.Neighbors[0], 1)
	require.Len(t, g.Neighbors[1], 1)
}

func TestParse_CommentsAndBlankLinesIgnored(t *testing.T) {
	src := "c this is a comment\n\np edge 2 1\nc another comment\ne 1 2\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, g.Size)
	require.Len(t, g.Neighbors[0], 1)
}

func TestParse_PColVariantAccepted(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p col 3 1\ne 1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.Size)
}

func TestParse_MultipleProblemLinesRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 0\np edge 3 0\n"))
	require.ErrorIs(t, err, dimacs.ErrMultipleProblemLines)
}

func TestParse_EdgeBeforeProblemLineRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("e 1 2\np edge 2 1\n"))
	require.ErrorIs(t, err, dimacs.ErrMissingProblemLine)
}

func TestParse_OutOfRangeEdgeRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 3\n"))
	require.ErrorIs(t, err, dimacs.ErrIndexOutOfBounds)
}

func TestParse_ZeroIndexedEdgeRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 0 1\n"))
	require.ErrorIs(t, err, dimacs.ErrIndexOutOfBounds)
}

func TestParse_SelfLoopRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 1\n"))
	require.ErrorIs(t, err, dimacs.ErrSelfLoop)
}

func TestParse_GarbageLineRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 1\nnot a valid line\n"))
	require.ErrorIs(t, err, dimacs.ErrUnparseableLine)
}
