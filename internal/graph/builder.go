package graph

import (
	"github.com/rowgraph/rowgraph/internal/concept"
	"github.com/rowgraph/rowgraph/internal/ir"
	"github.com/rowgraph/rowgraph/internal/resolve"
)

// Builder consumes resolved constraints and incrementally mutates one
// Graph. One Add method exists per drawable kind; the never-drawn kinds
// (Kind, Label, Value, Is, Iid, Comparison) have explicit no-op methods so
// the dispatch in Add stays total over the resolved set.
//
// The pipeline is needed for the variable-name labels on expression and
// function-call edges.
type Builder struct {
	pipeline *ir.Pipeline
	graph    *Graph
}

// NewBuilder creates a builder accumulating into a fresh graph.
func NewBuilder(pipeline *ir.Pipeline) *Builder {
	return &Builder{pipeline: pipeline, graph: New()}
}

// Finish hands over the accumulated graph. The builder may keep being used
// afterwards; the same graph keeps accumulating.
func (b *Builder) Finish() *Graph {
	return b.graph
}

// Add dispatches a resolved constraint to its kind-specific method.
func (b *Builder) Add(dc resolve.DataConstraint) {
	switch dc := dc.(type) {
	case *resolve.Isa:
		b.AddIsa(dc)
	case *resolve.Has:
		b.AddHas(dc)
	case *resolve.Links:
		b.AddLinks(dc)
	case *resolve.Sub:
		b.AddSub(dc)
	case *resolve.Owns:
		b.AddOwns(dc)
	case *resolve.Relates:
		b.AddRelates(dc)
	case *resolve.Plays:
		b.AddPlays(dc)
	case *resolve.Expression:
		b.AddExpression(dc)
	case *resolve.FunctionCall:
		b.AddFunctionCall(dc)
	case *resolve.Is:
		b.AddIs(dc)
	case *resolve.Iid:
		b.AddIid(dc)
	case *resolve.Comparison:
		b.AddComparison(dc)
	case *resolve.Kind:
		b.AddKind(dc)
	case *resolve.Label:
		b.AddLabel(dc)
	case *resolve.Value:
		b.AddValue(dc)
	}
}

// AddIsa draws instance → type. Skipped when the abstract type endpoint is
// a bare label: the type vertex would duplicate what the instance label
// already shows.
func (b *Builder) AddIsa(isa *resolve.Isa) {
	if isa.Instance == nil || isa.Type == nil {
		return
	}
	if _, bareLabel := isa.Origin.Type.(*ir.LabelVertex); bareLabel {
		return
	}
	b.graph.AddEdge(isa.Instance, isa.Type, relationalLabel("isa", isa.Exactness), "")
}

// AddHas draws owner → attribute.
func (b *Builder) AddHas(has *resolve.Has) {
	if has.Owner == nil || has.Attribute == nil {
		return
	}
	b.graph.AddEdge(has.Owner, has.Attribute, relationalLabel("has", has.Exactness), "")
}

// AddLinks draws relation → player, labeled with the role's display name.
// The label comes from a concrete role concept when the role resolved, or
// from the named-role vertex otherwise; when neither resolves the edge is
// drawn unlabeled.
func (b *Builder) AddLinks(links *resolve.Links) {
	if links.Relation == nil || links.Player == nil {
		return
	}
	b.graph.AddEdge(links.Relation, links.Player, roleLabel(links.Role), "")
}

// AddSub draws subtype → supertype.
func (b *Builder) AddSub(sub *resolve.Sub) {
	if sub.Subtype == nil || sub.Supertype == nil {
		return
	}
	b.graph.AddEdge(sub.Subtype, sub.Supertype, relationalLabel("sub", sub.Exactness), "")
}

// AddOwns draws owner → attribute.
func (b *Builder) AddOwns(owns *resolve.Owns) {
	if owns.Owner == nil || owns.Attribute == nil {
		return
	}
	b.graph.AddEdge(owns.Owner, owns.Attribute, relationalLabel("owns", owns.Exactness), "")
}

// AddRelates draws relation → role.
func (b *Builder) AddRelates(relates *resolve.Relates) {
	if relates.Relation == nil || relates.Role == nil {
		return
	}
	b.graph.AddEdge(relates.Relation, relates.Role, relationalLabel("relates", relates.Exactness), "")
}

// AddPlays draws player → role.
func (b *Builder) AddPlays(plays *resolve.Plays) {
	if plays.Player == nil || plays.Role == nil {
		return
	}
	b.graph.AddEdge(plays.Player, plays.Role, relationalLabel("plays", plays.Exactness), "")
}

// AddExpression draws one edge per argument into the expression vertex and
// one edge from the expression vertex to the assigned value. Requires the
// assigned endpoint and at least one argument.
func (b *Builder) AddExpression(expr *resolve.Expression) {
	if expr.Assigned == nil || len(expr.Arguments) == 0 {
		return
	}

	assignedName := b.endpointName(expr.Origin.Assigned)
	b.graph.AddEdge(expr.Expr, expr.Assigned, bracketLabel("assign", assignedName), assignedName)

	for i, arg := range expr.Arguments {
		if arg == nil {
			continue
		}
		argName := b.endpointName(expr.Origin.Arguments[i])
		b.graph.AddEdge(arg, expr.Expr, bracketLabel("arg", argName), argName)
	}
}

// AddFunctionCall draws one edge from the call vertex per assigned value
// and one edge into the call vertex per argument. Requires both tuples to
// be non-empty.
func (b *Builder) AddFunctionCall(fc *resolve.FunctionCall) {
	if len(fc.Assigned) == 0 || len(fc.Arguments) == 0 {
		return
	}

	for i, assigned := range fc.Assigned {
		if assigned == nil {
			continue
		}
		name := b.endpointName(fc.Origin.Assigned[i])
		b.graph.AddEdge(fc.Call, assigned, bracketLabel("assign", name), name)
	}

	for i, arg := range fc.Arguments {
		if arg == nil {
			continue
		}
		name := b.endpointName(fc.Origin.Arguments[i])
		b.graph.AddEdge(arg, fc.Call, bracketLabel("arg", name), name)
	}
}

// AddIs never draws: identity between two variables is a scalar fact, not
// graph structure.
func (b *Builder) AddIs(*resolve.Is) {}

// AddIid never draws.
func (b *Builder) AddIid(*resolve.Iid) {}

// AddComparison never draws.
func (b *Builder) AddComparison(*resolve.Comparison) {}

// AddKind never draws.
func (b *Builder) AddKind(*resolve.Kind) {}

// AddLabel never draws.
func (b *Builder) AddLabel(*resolve.Label) {}

// AddValue never draws.
func (b *Builder) AddValue(*resolve.Value) {}

// endpointName returns the declared variable name behind an abstract
// endpoint, or "" when the endpoint is not a named variable.
func (b *Builder) endpointName(v ir.Vertex) string {
	vv, ok := v.(*ir.VariableVertex)
	if !ok {
		return ""
	}
	name, _ := b.pipeline.VariableName(vv.Var)
	return name
}

// relationalLabel suffixes "!" for exact-match relational constraints.
func relationalLabel(base string, e ir.Exactness) string {
	if e == ir.Exact {
		return base + "!"
	}
	return base
}

// bracketLabel renders "assign[$x]" / "arg[$x]", or the bare base when the
// variable name is unknown.
func bracketLabel(base, name string) string {
	if name == "" {
		return base
	}
	return base + "[$" + name + "]"
}

// roleLabel extracts the display name of a links role vertex.
func roleLabel(role resolve.DataVertex) string {
	switch role := role.(type) {
	case *resolve.ConceptVertex:
		switch c := role.Concept.(type) {
		case concept.Role:
			return c.Name
		case concept.Type:
			return c.Label
		}
	case *resolve.NamedRoleVertex:
		return role.Name
	}
	return ""
}
