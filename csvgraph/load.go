package csvgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hamcircuit/core"
)

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// Problem is the informational p-line header.
type Problem struct {
	Type     string
	Vertices int
	Edges    int
	Line     int // 1-based source line
}

// Check compares the declared counts with g.
func (p *Problem) Check(g *core.Graph) error {
	if p == nil || g == nil {
		return nil
	}
	if p.Vertices != g.VertexCount() || p.Edges != g.EdgeCount() {
		return errors.Wrapf(ErrHeaderMismatch,
			"line %d declares %d vertices, %d edges; loaded %d vertices, %d edges",
			p.Line, p.Vertices, p.Edges, g.VertexCount(), g.EdgeCount())
	}

	return nil
}

// Document is the result of loading one graph description.
type Document struct {
	// Graph holds every declared vertex and every edge endpoint.
	Graph *core.Graph

	// Problem is the last p-line seen, or nil if there was none.
	Problem *Problem

	// Records counts the p/v/e lines that were applied.
	Records int
}

// Load parses a graph description from r. It stops at the first malformed
// record and reports its line number.
func Load(r io.Reader) (*Document, error) {
	doc := &Document{Graph: core.NewGraph()}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		rec, err := parseRecord.ParseString("", line)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "line %d: %q: %s", lineNo, line, parseMessage(err))
		}
		doc.apply(rec, lineNo)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "csvgraph: read after line %d", lineNo)
	}

	return doc, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "csvgraph: open")
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return doc, nil
}

func (d *Document) apply(rec *record, lineNo int) {
	d.Records++
	switch {
	case rec.Problem != nil:
		d.Problem = &Problem{
			Type:     rec.Problem.Type,
			Vertices: int(rec.Problem.Vertices),
			Edges:    int(rec.Problem.Edges),
			Line:     lineNo,
		}
	case rec.Vertex != nil:
		d.Graph.AddVertex(int(rec.Vertex.ID))
	case rec.Edge != nil:
		d.Graph.AddEdge(int(rec.Edge.U), int(rec.Edge.V))
	}
}

// parseMessage strips participle's position prefix; the caller supplies the line.
func parseMessage(err error) string {
	var perr participle.Error
	if errors.As(err, &perr) {
		return fmt.Sprintf("col %d: %s", perr.Position().Column, perr.Message())
	}

	return err.Error()
}
