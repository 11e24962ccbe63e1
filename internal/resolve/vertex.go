package resolve

import (
	"fmt"

	"github.com/rowgraph/rowgraph/internal/canon"
	"github.com/rowgraph/rowgraph/internal/concept"
	"github.com/rowgraph/rowgraph/internal/ir"
)

// DataVertex is a sealed interface over the identity tokens of graph nodes.
//
// Identity is value-based: two vertices are the same node iff their keys
// are equal, and keys depend only on the defining fields listed per
// variant - never on object instance, row, or insertion order.
type DataVertex interface {
	dataVertex() // Marker method - seals interface to this package

	// Key returns the identity key, usable as a map key.
	Key() string

	// Display returns the rendering used for graph labels.
	Display() string
}

// ConceptVertex wraps a concrete resolved value: an entity, relation,
// attribute, type, role type, or literal. Identity is the identity of the
// wrapped concept.
type ConceptVertex struct {
	Concept concept.Concept
}

func (*ConceptVertex) dataVertex() {}

func (v *ConceptVertex) Key() string { return "c:" + v.Concept.Key() }

func (v *ConceptVertex) Display() string { return v.Concept.Display() }

// NamedRoleVertex represents a role reference bound to a query variable but
// not resolved to a role-type concept. Identity is the bound variable
// alone; the name is display-only and excluded from identity.
type NamedRoleVertex struct {
	Var  ir.Variable
	Name string
}

func (*NamedRoleVertex) dataVertex() {}

func (v *NamedRoleVertex) Key() string { return fmt.Sprintf("nr:%d", v.Var.ID) }

func (v *NamedRoleVertex) Display() string { return v.Name }

// FunctionCallVertex is the synthetic vertex for one function-invocation
// site. Identity is the ordered triple (name, assigned keys, argument
// keys), hashed canonically so equal tuples collide across sessions.
type FunctionCallVertex struct {
	Name      string
	Assigned  []DataVertex
	Arguments []DataVertex

	key string
}

// NewFunctionCallVertex builds the vertex and computes its identity key.
// Absent tuple entries (nil) participate in identity as explicit markers so
// (f, [x, absent]) and (f, [x]) stay distinct.
func NewFunctionCallVertex(name string, assigned, arguments []DataVertex) *FunctionCallVertex {
	v := &FunctionCallVertex{Name: name, Assigned: assigned, Arguments: arguments}
	v.key = "fc:" + mustHashTuple(canon.DomainFunctionCall, map[string]any{
		"name":      name,
		"assigned":  tupleKeys(assigned),
		"arguments": tupleKeys(arguments),
	})
	return v
}

func (*FunctionCallVertex) dataVertex() {}

func (v *FunctionCallVertex) Key() string { return v.key }

func (v *FunctionCallVertex) Display() string { return v.Name + "()" }

// ExpressionVertex is the synthetic vertex for one expression-evaluation
// site. Identity is (text, assigned key, argument keys).
type ExpressionVertex struct {
	Text      string
	Assigned  DataVertex
	Arguments []DataVertex

	key string
}

// NewExpressionVertex builds the vertex and computes its identity key.
func NewExpressionVertex(text string, assigned DataVertex, arguments []DataVertex) *ExpressionVertex {
	v := &ExpressionVertex{Text: text, Assigned: assigned, Arguments: arguments}
	v.key = "ex:" + mustHashTuple(canon.DomainExpression, map[string]any{
		"text":      text,
		"assigned":  vertexKey(assigned),
		"arguments": tupleKeys(arguments),
	})
	return v
}

func (*ExpressionVertex) dataVertex() {}

func (v *ExpressionVertex) Key() string { return v.key }

func (v *ExpressionVertex) Display() string { return v.Text }

// Vertex resolves one abstract endpoint against one answer row.
//
// Behavior per endpoint kind:
//   - label: ConceptVertex wrapping the label as a type identity
//   - variable: absent when the variable is anonymous or unbound in this
//     row, otherwise ConceptVertex wrapping the bound concept
//   - literal: ConceptVertex wrapping the literal
//   - named role: NamedRoleVertex from the underlying variable and name
//
// A nil result means "absent": this endpoint cannot be drawn for this row.
func Vertex(p *ir.Pipeline, v ir.Vertex, row concept.Row) DataVertex {
	switch v := v.(type) {
	case *ir.LabelVertex:
		return &ConceptVertex{Concept: concept.Type{Label: v.Name}}
	case *ir.VariableVertex:
		name, ok := p.VariableName(v.Var)
		if !ok {
			return nil
		}
		bound, ok := row.Get(name)
		if !ok {
			return nil
		}
		return &ConceptVertex{Concept: bound}
	case *ir.ValueVertex:
		return &ConceptVertex{Concept: v.Literal}
	case *ir.NamedRoleVertex:
		return &NamedRoleVertex{Var: v.Var, Name: v.Name}
	default:
		return nil
	}
}

// tupleKeys maps an ordered vertex tuple to its ordered key list for
// identity hashing.
func tupleKeys(vs []DataVertex) []any {
	keys := make([]any, len(vs))
	for i, v := range vs {
		keys[i] = vertexKey(v)
	}
	return keys
}

// vertexKey returns the identity key of a possibly-absent vertex.
func vertexKey(v DataVertex) string {
	if v == nil {
		return "absent"
	}
	return v.Key()
}

// mustHashTuple hashes an identity tuple. The payload is built from
// strings and string lists only, so marshaling cannot fail; a failure here
// is a programming error.
func mustHashTuple(domain string, payload map[string]any) string {
	key, err := canon.HashValue(domain, payload)
	if err != nil {
		panic(err)
	}
	return key
}
