// Package dimacs parses the DIMACS second-generation graph format used by
// the benchmark instances this solver targets: "c" comment lines, a single
// "p edge N M" or "p col N M" problem line giving the vertex count, and
// "e U V" edge lines, all 1-indexed.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/bbmc/maxclique/driver"
)

// ErrMultipleProblemLines is returned when a file contains more than one
// "p" line.
var ErrMultipleProblemLines = errors.New("dimacs: multiple 'p' lines encountered")

// ErrMissingProblemLine is returned when an edge line appears before any
// "p" line has set the vertex count.
var ErrMissingProblemLine = errors.New("dimacs: edge line encountered before 'p' line")

// ErrIndexOutOfBounds is returned when an edge line names a vertex outside
// [1, N].
var ErrIndexOutOfBounds = errors.New("dimacs: edge index out of bounds")

// ErrSelfLoop is returned when an edge line names the same vertex twice.
var ErrSelfLoop = errors.New("dimacs: edge line contains a loop")

// ErrUnparseableLine is returned for any line matching none of comment,
// problem, or edge.
var ErrUnparseableLine = errors.New("dimacs: cannot parse line")

var (
	commentRE = regexp.MustCompile(`^c(\s.*)?$`)
	problemRE = regexp.MustCompile(`^p\s+(edge|col)\s+(\d+)\s+(\d+)?\s*$`)
	edgeRE    = regexp.MustCompile(`^e\s+(\d+)\s+(\d+)\s*$`)
)

// Parse reads a DIMACS-format graph from r and returns it as a driver.Graph
// in 0-indexed coordinates. Duplicate edges are tolerated: each undirected
// edge is recorded at most once per endpoint regardless of how many times
// it is repeated in the file.
func Parse(r io.Reader) (driver.Graph, error) {
	var g driver.Graph
	sawProblem := false
	var seen []map[int]struct{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch {
		case commentRE.MatchString(line):
			// Comment, ignore.

		case problemRE.MatchString(line):
			if sawProblem {
				return driver.Graph{}, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMultipleProblemLines)
			}
			match := problemRE.FindStringSubmatch(line)
			n, err := parseUint(match[2])
			if err != nil {
				return driver.Graph{}, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			g.Size = n
			g.Neighbors = make([][]int, n)
			seen = make([]map[int]struct{}, n)
			for i := range seen {
				seen[i] = make(map[int]struct{})
			}
			sawProblem = true

		case edgeRE.MatchString(line):
			if !sawProblem {
				return driver.Graph{}, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMissingProblemLine)
			}
			match := edgeRE.FindStringSubmatch(line)
			a, err := parseUint(match[1])
			if err != nil {
				return driver.Graph{}, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			b, err := parseUint(match[2])
			if err != nil {
				return driver.Graph{}, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			if a == 0 || b == 0 || a > g.Size || b > g.Size {
				return driver.Graph{}, fmt.Errorf("dimacs: line %d %q: %w", lineNo, line, ErrIndexOutOfBounds)
			}
			if a == b {
				return driver.Graph{}, fmt.Errorf("dimacs: line %d %q: %w", lineNo, line, ErrSelfLoop)
			}
			u, v := a-1, b-1
			if _, dup := seen[u][v]; !dup {
				seen[u][v] = struct{}{}
				seen[v][u] = struct{}{}
				g.Neighbors[u] = append(g.Neighbors[u], v)
				g.Neighbors[v] = append(g.Neighbors[v], u)
			}

		default:
			return driver.Graph{}, fmt.Errorf("dimacs: line %d %q: %w", lineNo, line, ErrUnparseableLine)
		}
	}
	if err := scanner.Err(); err != nil {
		return driver.Graph{}, fmt.Errorf("dimacs: reading file: %w", err)
	}

	return g, nil
}

// parseUint parses a non-negative decimal integer, matching the subset of
// strconv.Atoi's behaviour that the regexes above already guarantee input
// shape for (digits only, no sign).
func parseUint(s string) (int, error) {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	if n < 0 {
		return 0, fmt.Errorf("dimacs: integer overflow parsing %q", s)
	}
	return n, nil
}
