package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kambohq/kambograph/core"
)

// Edge is one parsed edge-list triple. Weight is meaningful only when
// Weighted is true (the source line carried a third token).
type Edge struct {
	Source   int
	Target   int
	Weight   int64
	Weighted bool
}

// Parse reads the edge list at path and returns the parsed triples.
// All failures wrap core.ErrInvalidOperation.
func Parse(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %v", core.ErrInvalidOperation, err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader reads an edge list from r and returns the parsed triples.
//
// Blank lines and lines starting with '#' are skipped. A line must carry at
// least two whitespace-separated tokens (source and target, non-negative
// integers); a weight is parsed only when the line has exactly three tokens.
// Malformed lines fail with core.ErrInvalidOperation carrying the 1-based
// line number and the line text.
func ParseReader(r io.Reader) ([]Edge, error) {
	var edges []Edge

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: invalid format at line %d: %s",
				core.ErrInvalidOperation, lineNo, line)
		}

		source, err := parseVertex(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid vertex format at line %d: %s",
				core.ErrInvalidOperation, lineNo, line)
		}
		target, err := parseVertex(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid vertex format at line %d: %s",
				core.ErrInvalidOperation, lineNo, line)
		}

		e := Edge{Source: source, Target: target}
		if len(parts) == 3 {
			w, werr := strconv.ParseInt(parts[2], 10, 64)
			if werr != nil {
				return nil, fmt.Errorf("%w: invalid weight at line %d: %s",
					core.ErrInvalidOperation, lineNo, line)
			}
			e.Weight = w
			e.Weighted = true
		}

		edges = append(edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read line: %v", core.ErrInvalidOperation, err)
	}

	return edges, nil
}

// parseVertex parses a non-negative integer vertex token.
func parseVertex(tok string) (int, error) {
	v, err := strconv.ParseUint(tok, 10, 63)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// Populate feeds parsed triples into g through the mutable capability:
// endpoints are added on demand, weighted triples go through SetEdgeWeight,
// unweighted ones through AddEdge. Duplicate unweighted triples surface as
// core.ErrEdgeAlreadyExists, exactly as a direct AddEdge call would.
func Populate(g core.WeightedGraphMut[int, int64], edges []Edge) error {
	for _, e := range edges {
		if !g.HasVertex(e.Source) {
			if err := g.AddVertex(e.Source); err != nil {
				return err
			}
		}
		if !g.HasVertex(e.Target) {
			if err := g.AddVertex(e.Target); err != nil {
				return err
			}
		}

		if e.Weighted {
			if err := g.SetEdgeWeight(e.Source, e.Target, e.Weight); err != nil {
				return err
			}
			continue
		}
		if err := g.AddEdge(e.Source, e.Target); err != nil {
			return err
		}
	}

	return nil
}
