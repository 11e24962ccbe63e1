package ir

import "github.com/rowgraph/rowgraph/internal/concept"

// Vertex is a sealed interface over the abstract endpoints a constraint can
// refer to before an answer row is applied.
//
// Vertex types:
//   - LabelVertex: a schema label written directly in the query
//   - VariableVertex: a query variable, bound (or not) per answer row
//   - ValueVertex: a literal value written directly in the query
//   - NamedRoleVertex: a role reference bound to a variable but carrying
//     only its display name, not a resolved role type
type Vertex interface {
	constraintVertex() // Marker method - seals interface to this package
}

// Variable identifies a query variable. Variables are positional: the
// pipeline maps them to declared names, and only named variables can be
// looked up in an answer row.
type Variable struct {
	ID uint32
}

// LabelVertex is a schema label endpoint (e.g. the "person" in `$x isa person`).
type LabelVertex struct {
	Name string
}

func (*LabelVertex) constraintVertex() {}

// VariableVertex is a query-variable endpoint.
type VariableVertex struct {
	Var Variable
}

func (*VariableVertex) constraintVertex() {}

// ValueVertex is a literal endpoint (e.g. the 30 in `$a == 30`).
type ValueVertex struct {
	Literal concept.Value
}

func (*ValueVertex) constraintVertex() {}

// NamedRoleVertex is a role endpoint that names a role without resolving it
// to a concrete role type. The variable carries identity; the name is
// display-only.
type NamedRoleVertex struct {
	Var  Variable
	Name string
}

func (*NamedRoleVertex) constraintVertex() {}
