package csvgraph

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// number captures a decimal integer field. A custom capture keeps "010"
// decimal instead of participle's base-prefix conversion.
type number int

func (n *number) Capture(values []string) error {
	v, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*n = number(v)

	return nil
}

// record is exactly one of the three line kinds.
type record struct {
	Problem *problemRecord `parser:"  @@"`
	Vertex  *vertexRecord  `parser:"| @@"`
	Edge    *edgeRecord    `parser:"| @@"`
}

type problemRecord struct {
	Type     string `parser:"'p' ',' @(Ident | Int)"`
	Vertices number `parser:"',' @Int"`
	Edges    number `parser:"',' @Int"`
}

type vertexRecord struct {
	ID number `parser:"'v' ',' @Int"`
}

type edgeRecord struct {
	U number `parser:"'e' ',' @Int"`
	V number `parser:"',' @Int"`
}

var recordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.\-]*`},
	{Name: "Comma", Pattern: `,`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

var parseRecord = participle.MustBuild[record](
	participle.Lexer(recordLexer),
)
