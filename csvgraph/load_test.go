package csvgraph_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamcircuit/builder"
	"github.com/katalvlaran/hamcircuit/csvgraph"
)

const triangleWithIsolated = `c sample graph
c second comment line
p,edge,4,3

v,1
v, 4
e,1,2
 e , 2 , 3
e,3,1
`

func TestLoad(t *testing.T) {
	doc, err := csvgraph.Load(strings.NewReader(triangleWithIsolated))
	require.NoError(t, err)

	g := doc.Graph
	assert.Equal(t, []int{1, 2, 3, 4}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 1))
	assert.True(t, g.HasEdge(3, 2))
	assert.True(t, g.HasEdge(1, 3))
	assert.Equal(t, 6, doc.Records)

	require.NotNil(t, doc.Problem)
	assert.Equal(t, csvgraph.Problem{Type: "edge", Vertices: 4, Edges: 3, Line: 3}, *doc.Problem)
	assert.NoError(t, doc.Problem.Check(g))
}

func TestLoad_EdgeEndpointsBecomeVertices(t *testing.T) {
	doc, err := csvgraph.Load(strings.NewReader("e,10,20\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, doc.Graph.Vertices())
	assert.Nil(t, doc.Problem)
}

func TestLoad_DecimalIDs(t *testing.T) {
	doc, err := csvgraph.Load(strings.NewReader("e,010,-3\ne,+7,10\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 7, 10}, doc.Graph.Vertices())
	assert.True(t, doc.Graph.HasEdge(10, 7))
}

func TestLoad_Empty(t *testing.T) {
	doc, err := csvgraph.Load(strings.NewReader("c nothing here\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Graph.VertexCount())
	assert.Zero(t, doc.Records)
}

func TestLoad_HeaderMismatch(t *testing.T) {
	doc, err := csvgraph.Load(strings.NewReader("p,edge,5,5\ne,1,2\n"))
	require.NoError(t, err, "header is informational only")
	assert.ErrorIs(t, doc.Problem.Check(doc.Graph), csvgraph.ErrHeaderMismatch)
}

func TestLoad_Malformed(t *testing.T) {
	tests := map[string]string{
		"NonInteger":    "e,1,x\n",
		"MissingField":  "e,1\n",
		"ExtraField":    "v,1,2\n",
		"UnknownTag":    "q,1,2\n",
		"EmptyField":    "e,,2\n",
		"BadHeader":     "p,edge,three,3\n",
		"NoSeparator":   "e 1 2\n",
		"FloatVertexID": "v,1.5\n",
	}

	for name, input := range tests {
		input := input
		t.Run(name, func(t *testing.T) {
			doc, err := csvgraph.Load(strings.NewReader("c ok\ne,1,2\n" + input))
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, csvgraph.ErrMalformedRecord)
			assert.Contains(t, err.Error(), "line 3")
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.csv")
	require.NoError(t, os.WriteFile(path, []byte(triangleWithIsolated), 0o600))

	doc, err := csvgraph.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Graph.VertexCount())

	_, err = csvgraph.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(6))
	require.NoError(t, err)
	g.AddVertex(100)
	g.AddEdge(3, 3)

	var buf bytes.Buffer
	require.NoError(t, csvgraph.Write(&buf, g, ""))
	assert.True(t, strings.HasPrefix(buf.String(), "p,edge,7,11\n"))

	doc, err := csvgraph.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.AdjacencyList(), doc.Graph.AdjacencyList())
	assert.NoError(t, doc.Problem.Check(doc.Graph))
}

func TestWrite_Format(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvgraph.Write(&buf, g, "ham"))
	assert.Equal(t, "p,ham,3,2\nv,1\nv,2\nv,3\ne,1,2\ne,2,3\n", buf.String())

	assert.ErrorIs(t, csvgraph.Write(&buf, nil, ""), csvgraph.ErrGraphNil)
}
