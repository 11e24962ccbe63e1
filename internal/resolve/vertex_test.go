package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowgraph/rowgraph/internal/concept"
	"github.com/rowgraph/rowgraph/internal/ir"
)

func testPipeline() *ir.Pipeline {
	p := ir.NewPipeline()
	p.Declare(ir.Variable{ID: 0}, "p")
	p.Declare(ir.Variable{ID: 1}, "n")
	p.Declare(ir.Variable{ID: 2}, "") // anonymous
	return p
}

func TestVertexLabelEndpoint(t *testing.T) {
	got := Vertex(testPipeline(), &ir.LabelVertex{Name: "person"}, concept.Row{})

	cv, ok := got.(*ConceptVertex)
	require.True(t, ok)
	assert.Equal(t, concept.Type{Label: "person"}, cv.Concept)
}

func TestVertexBoundVariable(t *testing.T) {
	row := concept.Row{"p": concept.Entity{Type: "person", IID: "0x1"}}

	got := Vertex(testPipeline(), &ir.VariableVertex{Var: ir.Variable{ID: 0}}, row)

	cv, ok := got.(*ConceptVertex)
	require.True(t, ok)
	assert.Equal(t, concept.Entity{Type: "person", IID: "0x1"}, cv.Concept)
}

func TestVertexUnboundVariableIsAbsent(t *testing.T) {
	got := Vertex(testPipeline(), &ir.VariableVertex{Var: ir.Variable{ID: 0}}, concept.Row{})
	assert.Nil(t, got)
}

func TestVertexAnonymousVariableIsAbsent(t *testing.T) {
	// The row even has a binding under the empty name; anonymity wins.
	row := concept.Row{"": concept.Entity{Type: "person", IID: "0x1"}}

	got := Vertex(testPipeline(), &ir.VariableVertex{Var: ir.Variable{ID: 2}}, row)
	assert.Nil(t, got)
}

func TestVertexLiteralEndpoint(t *testing.T) {
	got := Vertex(testPipeline(), &ir.ValueVertex{Literal: concept.IntegerValue(30)}, concept.Row{})

	cv, ok := got.(*ConceptVertex)
	require.True(t, ok)
	assert.Equal(t, concept.IntegerValue(30), cv.Concept)
}

func TestVertexNamedRoleEndpoint(t *testing.T) {
	got := Vertex(testPipeline(), &ir.NamedRoleVertex{Var: ir.Variable{ID: 1}, Name: "employee"}, concept.Row{})

	nr, ok := got.(*NamedRoleVertex)
	require.True(t, ok)
	assert.Equal(t, "employee", nr.Display())
	assert.Equal(t, "nr:1", nr.Key())
}

func TestNamedRoleIdentityIgnoresName(t *testing.T) {
	a := &NamedRoleVertex{Var: ir.Variable{ID: 3}, Name: "employee"}
	b := &NamedRoleVertex{Var: ir.Variable{ID: 3}, Name: "employer"}
	c := &NamedRoleVertex{Var: ir.Variable{ID: 4}, Name: "employee"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestFunctionCallVertexIdentity(t *testing.T) {
	arg := &ConceptVertex{Concept: concept.Entity{Type: "person", IID: "0x1"}}
	out := &ConceptVertex{Concept: concept.IntegerValue(30)}

	a := NewFunctionCallVertex("age", []DataVertex{out}, []DataVertex{arg})
	b := NewFunctionCallVertex("age", []DataVertex{out}, []DataVertex{arg})

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "age()", a.Display())

	// Different name or different tuple breaks identity.
	c := NewFunctionCallVertex("height", []DataVertex{out}, []DataVertex{arg})
	assert.NotEqual(t, a.Key(), c.Key())

	d := NewFunctionCallVertex("age", []DataVertex{out}, nil)
	assert.NotEqual(t, a.Key(), d.Key())
}

func TestFunctionCallVertexAbsentEntriesCount(t *testing.T) {
	arg := &ConceptVertex{Concept: concept.Entity{Type: "person", IID: "0x1"}}

	// [arg, absent] and [arg] are different invocation shapes.
	withAbsent := NewFunctionCallVertex("f", nil, []DataVertex{arg, nil})
	without := NewFunctionCallVertex("f", nil, []DataVertex{arg})

	assert.NotEqual(t, withAbsent.Key(), without.Key())
}

func TestExpressionVertexIdentity(t *testing.T) {
	arg := &ConceptVertex{Concept: concept.IntegerValue(2)}
	assigned := &ConceptVertex{Concept: concept.IntegerValue(4)}

	a := NewExpressionVertex("$x * 2", assigned, []DataVertex{arg})
	b := NewExpressionVertex("$x * 2", assigned, []DataVertex{arg})
	c := NewExpressionVertex("$x + 2", assigned, []DataVertex{arg})

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, "$x * 2", a.Display())
}

func TestExpressionAndCallDomainsDisjoint(t *testing.T) {
	// An expression and a call built from superficially similar tuples
	// must never share a key.
	expr := NewExpressionVertex("f", nil, nil)
	call := NewFunctionCallVertex("f", nil, nil)

	assert.NotEqual(t, expr.Key(), call.Key())
}
