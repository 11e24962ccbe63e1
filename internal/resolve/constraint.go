package resolve

import (
	"github.com/rowgraph/rowgraph/internal/concept"
	"github.com/rowgraph/rowgraph/internal/ir"
)

// DataConstraint is a sealed interface over the resolved occurrences of a
// constraint within one answer row. Each record keeps a typed reference to
// its originating abstract constraint (the emission layer inspects the
// abstract endpoints for edge naming) and the branch index it occurred
// under, if any.
//
// Endpoint fields hold nil for absent endpoints; whether a record with
// absent endpoints produces edges is the emission layer's decision.
type DataConstraint interface {
	dataConstraint() // Marker method - seals interface to this package
}

// Isa is a resolved type-membership constraint.
type Isa struct {
	Origin      *ir.Isa
	AnswerIndex *int
	Instance    DataVertex
	Type        DataVertex
	Exactness   ir.Exactness
}

func (*Isa) dataConstraint() {}

// Has is a resolved attribute-ownership constraint over instances.
type Has struct {
	Origin      *ir.Has
	AnswerIndex *int
	Owner       DataVertex
	Attribute   DataVertex
	Exactness   ir.Exactness
}

func (*Has) dataConstraint() {}

// Links is a resolved role-play constraint.
type Links struct {
	Origin      *ir.Links
	AnswerIndex *int
	Relation    DataVertex
	Player      DataVertex
	Role        DataVertex
	Exactness   ir.Exactness
}

func (*Links) dataConstraint() {}

// Sub is a resolved subtyping constraint.
type Sub struct {
	Origin      *ir.Sub
	AnswerIndex *int
	Subtype     DataVertex
	Supertype   DataVertex
	Exactness   ir.Exactness
}

func (*Sub) dataConstraint() {}

// Owns is a resolved attribute-ownership constraint over types.
type Owns struct {
	Origin      *ir.Owns
	AnswerIndex *int
	Owner       DataVertex
	Attribute   DataVertex
	Exactness   ir.Exactness
}

func (*Owns) dataConstraint() {}

// Relates is a resolved role-declaration constraint.
type Relates struct {
	Origin      *ir.Relates
	AnswerIndex *int
	Relation    DataVertex
	Role        DataVertex
	Exactness   ir.Exactness
}

func (*Relates) dataConstraint() {}

// Plays is a resolved role-capability constraint.
type Plays struct {
	Origin      *ir.Plays
	AnswerIndex *int
	Player      DataVertex
	Role        DataVertex
	Exactness   ir.Exactness
}

func (*Plays) dataConstraint() {}

// FunctionCall is a resolved function-invocation site.
type FunctionCall struct {
	Origin      *ir.FunctionCall
	AnswerIndex *int
	Call        *FunctionCallVertex
	Arguments   []DataVertex
	Assigned    []DataVertex
}

func (*FunctionCall) dataConstraint() {}

// Expression is a resolved expression-evaluation site.
type Expression struct {
	Origin      *ir.Expression
	AnswerIndex *int
	Expr        *ExpressionVertex
	Arguments   []DataVertex
	Assigned    DataVertex
}

func (*Expression) dataConstraint() {}

// Is is a resolved same-concept assertion. Never drawn.
type Is struct {
	Origin      *ir.Is
	AnswerIndex *int
	Lhs         DataVertex
	Rhs         DataVertex
}

func (*Is) dataConstraint() {}

// Iid is a resolved instance-identifier pin. Never drawn.
type Iid struct {
	Origin      *ir.Iid
	AnswerIndex *int
	Var         DataVertex
	IID         string
}

func (*Iid) dataConstraint() {}

// Comparison is a resolved comparison. Never drawn.
type Comparison struct {
	Origin      *ir.Comparison
	AnswerIndex *int
	Lhs         DataVertex
	Rhs         DataVertex
	Comparator  ir.Comparator
}

func (*Comparison) dataConstraint() {}

// Kind is a resolved schema-kind assertion. Never drawn.
type Kind struct {
	Origin      *ir.Kind
	AnswerIndex *int
	Kind        ir.TypeKind
	Type        DataVertex
}

func (*Kind) dataConstraint() {}

// Label is a resolved label pin. Never drawn.
type Label struct {
	Origin      *ir.Label
	AnswerIndex *int
	Var         DataVertex
	Label       string
}

func (*Label) dataConstraint() {}

// Value is a resolved value-type assertion. Never drawn.
type Value struct {
	Origin        *ir.Value
	AnswerIndex   *int
	AttributeType DataVertex
	ValueType     string
}

func (*Value) dataConstraint() {}

// Constraint resolves one abstract constraint against one answer row.
//
// The dispatch is total over the closed ir.Constraint set. Branch wrappers
// (Disjunction, Negation, Try) return (nil, nil) by design, not by
// omission: their nested constraints are converted independently by the
// driver, and drawing the wrapper itself would double-count the branch.
// Absent endpoints never fail resolution; they are carried into the record.
func Constraint(p *ir.Pipeline, c ir.Constraint, answerIndex *int, row concept.Row) (DataConstraint, error) {
	switch c := c.(type) {
	case *ir.Isa:
		return &Isa{
			Origin:      c,
			AnswerIndex: answerIndex,
			Instance:    Vertex(p, c.Instance, row),
			Type:        Vertex(p, c.Type, row),
			Exactness:   c.Exactness,
		}, nil

	case *ir.Has:
		return &Has{
			Origin:      c,
			AnswerIndex: answerIndex,
			Owner:       Vertex(p, c.Owner, row),
			Attribute:   Vertex(p, c.Attribute, row),
			Exactness:   c.Exactness,
		}, nil

	case *ir.Links:
		return &Links{
			Origin:      c,
			AnswerIndex: answerIndex,
			Relation:    Vertex(p, c.Relation, row),
			Player:      Vertex(p, c.Player, row),
			Role:        Vertex(p, c.Role, row),
			Exactness:   c.Exactness,
		}, nil

	case *ir.Sub:
		return &Sub{
			Origin:      c,
			AnswerIndex: answerIndex,
			Subtype:     Vertex(p, c.Subtype, row),
			Supertype:   Vertex(p, c.Supertype, row),
			Exactness:   c.Exactness,
		}, nil

	case *ir.Owns:
		return &Owns{
			Origin:      c,
			AnswerIndex: answerIndex,
			Owner:       Vertex(p, c.Owner, row),
			Attribute:   Vertex(p, c.Attribute, row),
			Exactness:   c.Exactness,
		}, nil

	case *ir.Relates:
		return &Relates{
			Origin:      c,
			AnswerIndex: answerIndex,
			Relation:    Vertex(p, c.Relation, row),
			Role:        Vertex(p, c.Role, row),
			Exactness:   c.Exactness,
		}, nil

	case *ir.Plays:
		return &Plays{
			Origin:      c,
			AnswerIndex: answerIndex,
			Player:      Vertex(p, c.Player, row),
			Role:        Vertex(p, c.Role, row),
			Exactness:   c.Exactness,
		}, nil

	case *ir.FunctionCall:
		arguments := resolveTuple(p, c.Arguments, row)
		assigned := resolveTuple(p, c.Assigned, row)
		return &FunctionCall{
			Origin:      c,
			AnswerIndex: answerIndex,
			Call:        NewFunctionCallVertex(c.Name, assigned, arguments),
			Arguments:   arguments,
			Assigned:    assigned,
		}, nil

	case *ir.Expression:
		arguments := resolveTuple(p, c.Arguments, row)
		assigned := Vertex(p, c.Assigned, row)
		return &Expression{
			Origin:      c,
			AnswerIndex: answerIndex,
			Expr:        NewExpressionVertex(c.Text, assigned, arguments),
			Arguments:   arguments,
			Assigned:    assigned,
		}, nil

	case *ir.Is:
		return &Is{
			Origin:      c,
			AnswerIndex: answerIndex,
			Lhs:         Vertex(p, c.Lhs, row),
			Rhs:         Vertex(p, c.Rhs, row),
		}, nil

	case *ir.Iid:
		return &Iid{
			Origin:      c,
			AnswerIndex: answerIndex,
			Var:         Vertex(p, c.Var, row),
			IID:         c.IID,
		}, nil

	case *ir.Comparison:
		return &Comparison{
			Origin:      c,
			AnswerIndex: answerIndex,
			Lhs:         Vertex(p, c.Lhs, row),
			Rhs:         Vertex(p, c.Rhs, row),
			Comparator:  c.Comparator,
		}, nil

	case *ir.Kind:
		return &Kind{
			Origin:      c,
			AnswerIndex: answerIndex,
			Kind:        c.Kind,
			Type:        Vertex(p, c.Type, row),
		}, nil

	case *ir.Label:
		return &Label{
			Origin:      c,
			AnswerIndex: answerIndex,
			Var:         Vertex(p, c.Var, row),
			Label:       c.Label,
		}, nil

	case *ir.Value:
		return &Value{
			Origin:        c,
			AnswerIndex:   answerIndex,
			AttributeType: Vertex(p, c.AttributeType, row),
			ValueType:     c.ValueType,
		}, nil

	case *ir.Disjunction, *ir.Negation, *ir.Try:
		// Branch wrappers carry no drawable structure of their own.
		return nil, nil

	default:
		return nil, NewUnsupportedKindError(c)
	}
}

// resolveTuple resolves an ordered endpoint tuple, preserving position.
// Absent endpoints stay nil in place.
func resolveTuple(p *ir.Pipeline, vs []ir.Vertex, row concept.Row) []DataVertex {
	out := make([]DataVertex, len(vs))
	for i, v := range vs {
		out[i] = Vertex(p, v, row)
	}
	return out
}
