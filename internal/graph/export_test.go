package graph

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowgraph/rowgraph/internal/concept"
	"github.com/rowgraph/rowgraph/internal/ir"
	"github.com/rowgraph/rowgraph/internal/resolve"
)

func exportFixture() *Graph {
	g := New()
	person := &resolve.ConceptVertex{Concept: concept.Entity{Type: "person", IID: "0x1"}}
	name := &resolve.ConceptVertex{Concept: concept.Attribute{Type: "name", Value: concept.StringValue("Alice")}}
	role := &resolve.NamedRoleVertex{Var: ir.Variable{ID: 5}, Name: "employee"}

	g.AddEdge(person, name, "has!", "")
	g.AddEdge(person, role, "", "")
	return g
}

func TestWriteDOTGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportFixture().WriteDOT(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export_dot", buf.Bytes())
}

func TestMarshalJSONGolden(t *testing.T) {
	data, err := exportFixture().MarshalJSON()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export_json", data)
}

func TestMarshalJSONDeterministic(t *testing.T) {
	first, err := exportFixture().MarshalJSON()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := exportFixture().MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDotQuoteEscapes(t *testing.T) {
	assert.Equal(t, `"plain"`, dotQuote("plain"))
	assert.Equal(t, `"a\"b"`, dotQuote(`a"b`))
	assert.Equal(t, `"a\\b"`, dotQuote(`a\b`))
}

func TestVertexKindTags(t *testing.T) {
	assert.Equal(t, "concept", vertexKind(&resolve.ConceptVertex{Concept: concept.Type{Label: "t"}}))
	assert.Equal(t, "role", vertexKind(&resolve.NamedRoleVertex{}))
	assert.Equal(t, "call", vertexKind(resolve.NewFunctionCallVertex("f", nil, nil)))
	assert.Equal(t, "expression", vertexKind(resolve.NewExpressionVertex("x", nil, nil)))
}
