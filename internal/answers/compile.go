package answers

import (
	"fmt"

	"github.com/rowgraph/rowgraph/internal/concept"
	"github.com/rowgraph/rowgraph/internal/ir"
)

// Compile lowers a validated document into the forms the conversion engine
// consumes. Variable IDs are positional: the i-th declared variable gets
// ID i.
func (d *Document) Compile() (*ir.Pipeline, []ir.Constraint, []concept.Row, error) {
	c := &compiler{
		pipeline: ir.NewPipeline(),
		vars:     make(map[string]ir.Variable, len(d.Query.Variables)),
	}

	for i, name := range d.Query.Variables {
		v := ir.Variable{ID: uint32(i)}
		c.vars[name] = v
		c.pipeline.Declare(v, name)
	}

	constraints, err := c.compileConstraints(d.Query.Constraints)
	if err != nil {
		return nil, nil, nil, err
	}

	rows := make([]concept.Row, len(d.Rows))
	for i, rowDoc := range d.Rows {
		row, err := compileRow(rowDoc)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}

	return c.pipeline, constraints, rows, nil
}

type compiler struct {
	pipeline *ir.Pipeline
	vars     map[string]ir.Variable
}

func (c *compiler) compileConstraints(docs []ConstraintDoc) ([]ir.Constraint, error) {
	out := make([]ir.Constraint, len(docs))
	for i, doc := range docs {
		cons, err := c.compileConstraint(doc)
		if err != nil {
			return nil, fmt.Errorf("constraint %d (%s): %w", i, doc.Kind, err)
		}
		out[i] = cons
	}
	return out, nil
}

func (c *compiler) compileConstraint(doc ConstraintDoc) (ir.Constraint, error) {
	switch doc.Kind {
	case "isa":
		instance, err := c.endpoint("instance", doc.Instance)
		if err != nil {
			return nil, err
		}
		typ, err := c.endpoint("type", doc.Type)
		if err != nil {
			return nil, err
		}
		exactness, err := parseExactness(doc.Exactness)
		if err != nil {
			return nil, err
		}
		return &ir.Isa{Instance: instance, Type: typ, Exactness: exactness}, nil

	case "has":
		owner, err := c.endpoint("owner", doc.Owner)
		if err != nil {
			return nil, err
		}
		attribute, err := c.endpoint("attribute", doc.Attribute)
		if err != nil {
			return nil, err
		}
		exactness, err := parseExactness(doc.Exactness)
		if err != nil {
			return nil, err
		}
		return &ir.Has{Owner: owner, Attribute: attribute, Exactness: exactness}, nil

	case "links":
		relation, err := c.endpoint("relation", doc.Relation)
		if err != nil {
			return nil, err
		}
		player, err := c.endpoint("player", doc.Player)
		if err != nil {
			return nil, err
		}
		role, err := c.endpoint("role", doc.Role)
		if err != nil {
			return nil, err
		}
		exactness, err := parseExactness(doc.Exactness)
		if err != nil {
			return nil, err
		}
		return &ir.Links{Relation: relation, Player: player, Role: role, Exactness: exactness}, nil

	case "sub":
		subtype, err := c.endpoint("subtype", doc.Subtype)
		if err != nil {
			return nil, err
		}
		supertype, err := c.endpoint("supertype", doc.Supertype)
		if err != nil {
			return nil, err
		}
		exactness, err := parseExactness(doc.Exactness)
		if err != nil {
			return nil, err
		}
		return &ir.Sub{Subtype: subtype, Supertype: supertype, Exactness: exactness}, nil

	case "owns":
		owner, err := c.endpoint("owner", doc.Owner)
		if err != nil {
			return nil, err
		}
		attribute, err := c.endpoint("attribute", doc.Attribute)
		if err != nil {
			return nil, err
		}
		exactness, err := parseExactness(doc.Exactness)
		if err != nil {
			return nil, err
		}
		return &ir.Owns{Owner: owner, Attribute: attribute, Exactness: exactness}, nil

	case "relates":
		relation, err := c.endpoint("relation", doc.Relation)
		if err != nil {
			return nil, err
		}
		role, err := c.endpoint("role", doc.Role)
		if err != nil {
			return nil, err
		}
		exactness, err := parseExactness(doc.Exactness)
		if err != nil {
			return nil, err
		}
		return &ir.Relates{Relation: relation, Role: role, Exactness: exactness}, nil

	case "plays":
		player, err := c.endpoint("player", doc.Player)
		if err != nil {
			return nil, err
		}
		role, err := c.endpoint("role", doc.Role)
		if err != nil {
			return nil, err
		}
		exactness, err := parseExactness(doc.Exactness)
		if err != nil {
			return nil, err
		}
		return &ir.Plays{Player: player, Role: role, Exactness: exactness}, nil

	case "function_call":
		if doc.Name == "" {
			return nil, fmt.Errorf("function_call requires name")
		}
		assigned, err := c.endpoints(doc.Assigned)
		if err != nil {
			return nil, fmt.Errorf("assigned: %w", err)
		}
		arguments, err := c.endpoints(doc.Arguments)
		if err != nil {
			return nil, fmt.Errorf("arguments: %w", err)
		}
		return &ir.FunctionCall{Name: doc.Name, Assigned: assigned, Arguments: arguments}, nil

	case "expression":
		if doc.Text == "" {
			return nil, fmt.Errorf("expression requires text")
		}
		if len(doc.Assigned) != 1 {
			return nil, fmt.Errorf("expression requires exactly one assigned endpoint, got %d", len(doc.Assigned))
		}
		assigned, err := c.compileVertex(doc.Assigned[0])
		if err != nil {
			return nil, fmt.Errorf("assigned: %w", err)
		}
		arguments, err := c.endpoints(doc.Arguments)
		if err != nil {
			return nil, fmt.Errorf("arguments: %w", err)
		}
		return &ir.Expression{Text: doc.Text, Assigned: assigned, Arguments: arguments}, nil

	case "is":
		lhs, err := c.endpoint("lhs", doc.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := c.endpoint("rhs", doc.Rhs)
		if err != nil {
			return nil, err
		}
		return &ir.Is{Lhs: lhs, Rhs: rhs}, nil

	case "iid":
		v, err := c.endpoint("var", doc.Var)
		if err != nil {
			return nil, err
		}
		return &ir.Iid{Var: v, IID: doc.IID}, nil

	case "comparison":
		lhs, err := c.endpoint("lhs", doc.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := c.endpoint("rhs", doc.Rhs)
		if err != nil {
			return nil, err
		}
		return &ir.Comparison{Lhs: lhs, Rhs: rhs, Comparator: ir.Comparator(doc.Comparator)}, nil

	case "kind":
		typ, err := c.endpoint("type", doc.Type)
		if err != nil {
			return nil, err
		}
		kind, err := parseTypeKind(doc.TypeKind)
		if err != nil {
			return nil, err
		}
		return &ir.Kind{Kind: kind, Type: typ}, nil

	case "label":
		v, err := c.endpoint("var", doc.Var)
		if err != nil {
			return nil, err
		}
		return &ir.Label{Var: v, Label: doc.Label}, nil

	case "value":
		attributeType, err := c.endpoint("attribute", doc.Attribute)
		if err != nil {
			return nil, err
		}
		return &ir.Value{AttributeType: attributeType, ValueType: doc.ValueType}, nil

	case "disjunction":
		branches := make([][]ir.Constraint, len(doc.Branches))
		for i, branch := range doc.Branches {
			compiled, err := c.compileConstraints(branch)
			if err != nil {
				return nil, fmt.Errorf("branch %d: %w", i, err)
			}
			branches[i] = compiled
		}
		return &ir.Disjunction{Branches: branches}, nil

	case "negation":
		body, err := c.compileConstraints(doc.Body)
		if err != nil {
			return nil, err
		}
		return &ir.Negation{Body: body}, nil

	case "try":
		body, err := c.compileConstraints(doc.Body)
		if err != nil {
			return nil, err
		}
		return &ir.Try{Body: body}, nil

	default:
		return nil, fmt.Errorf("unknown constraint kind %q", doc.Kind)
	}
}

// endpoint compiles a required endpoint, naming the field on failure.
func (c *compiler) endpoint(field string, doc *VertexDoc) (ir.Vertex, error) {
	if doc == nil {
		return nil, fmt.Errorf("missing %s endpoint", field)
	}
	v, err := c.compileVertex(*doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

func (c *compiler) endpoints(docs []VertexDoc) ([]ir.Vertex, error) {
	out := make([]ir.Vertex, len(docs))
	for i, doc := range docs {
		v, err := c.compileVertex(doc)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (c *compiler) compileVertex(doc VertexDoc) (ir.Vertex, error) {
	set := 0
	for _, present := range []bool{doc.Label != nil, doc.Var != nil, doc.Value != nil, doc.Role != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("endpoint must set exactly one of label/var/value/role, got %d", set)
	}

	switch {
	case doc.Label != nil:
		return &ir.LabelVertex{Name: *doc.Label}, nil
	case doc.Var != nil:
		v, err := c.lookupVar(*doc.Var)
		if err != nil {
			return nil, err
		}
		return &ir.VariableVertex{Var: v}, nil
	case doc.Value != nil:
		literal, err := compileValue(*doc.Value)
		if err != nil {
			return nil, err
		}
		return &ir.ValueVertex{Literal: literal}, nil
	default:
		v, err := c.lookupVar(doc.Role.Var)
		if err != nil {
			return nil, err
		}
		return &ir.NamedRoleVertex{Var: v, Name: doc.Role.Name}, nil
	}
}

func (c *compiler) lookupVar(name string) (ir.Variable, error) {
	v, ok := c.vars[name]
	if !ok {
		return ir.Variable{}, fmt.Errorf("undeclared variable %q", name)
	}
	return v, nil
}

func compileRow(doc RowDoc) (concept.Row, error) {
	row := make(concept.Row, len(doc))
	for name, conceptDoc := range doc {
		bound, err := compileConcept(conceptDoc)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		row[name] = bound
	}
	return row, nil
}

func compileConcept(doc ConceptDoc) (concept.Concept, error) {
	switch {
	case doc.Entity != nil:
		return concept.Entity{Type: doc.Entity.Type, IID: doc.Entity.IID}, nil
	case doc.Relation != nil:
		return concept.Relation{Type: doc.Relation.Type, IID: doc.Relation.IID}, nil
	case doc.Attribute != nil:
		value, err := compileValue(doc.Attribute.Value)
		if err != nil {
			return nil, err
		}
		return concept.Attribute{Type: doc.Attribute.Type, Value: value}, nil
	case doc.Type != nil:
		return concept.Type{Label: doc.Type.Label}, nil
	case doc.Role != nil:
		return concept.Role{Relation: doc.Role.Relation, Name: doc.Role.Name}, nil
	case doc.Value != nil:
		return compileValue(*doc.Value)
	default:
		return nil, fmt.Errorf("binding must set one of entity/relation/attribute/type/role/value")
	}
}

func compileValue(doc ValueDoc) (concept.Value, error) {
	kind, err := parseValueKind(doc.Type)
	if err != nil {
		return concept.Value{}, err
	}
	return concept.Value{Kind: kind, Literal: doc.Literal}, nil
}

func parseExactness(s string) (ir.Exactness, error) {
	switch s {
	case "", "inferred":
		return ir.Inferred, nil
	case "exact":
		return ir.Exact, nil
	default:
		return ir.Inferred, fmt.Errorf("unknown exactness %q", s)
	}
}

func parseTypeKind(s string) (ir.TypeKind, error) {
	switch s {
	case "entity":
		return ir.KindEntity, nil
	case "relation":
		return ir.KindRelation, nil
	case "attribute":
		return ir.KindAttribute, nil
	case "role":
		return ir.KindRole, nil
	default:
		return ir.KindEntity, fmt.Errorf("unknown type kind %q", s)
	}
}

func parseValueKind(s string) (concept.ValueKind, error) {
	switch s {
	case "string":
		return concept.ValueString, nil
	case "integer":
		return concept.ValueInteger, nil
	case "double":
		return concept.ValueDouble, nil
	case "boolean":
		return concept.ValueBoolean, nil
	case "datetime":
		return concept.ValueDateTime, nil
	default:
		return concept.ValueString, fmt.Errorf("unknown value type %q", s)
	}
}
