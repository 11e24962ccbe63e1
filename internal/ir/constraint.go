package ir

// Constraint is a sealed interface over the atomic facts a matched query
// pattern asserts. Fifteen kinds are drawable; Disjunction, Negation and
// Try are branch wrappers whose nested constraints are converted
// independently - the wrappers themselves never become edges.
//
// The set is closed and versioned against the upstream query schema. The
// resolver dispatches exhaustively over it; a kind it does not know is a
// build/version skew and fails the whole conversion, it is never skipped.
type Constraint interface {
	constraintNode() // Marker method - seals interface to this package
}

// Isa asserts that an instance belongs to a type.
type Isa struct {
	Instance  Vertex
	Type      Vertex
	Exactness Exactness
}

func (*Isa) constraintNode() {}

// Has asserts that an owner instance holds an attribute instance.
type Has struct {
	Owner     Vertex
	Attribute Vertex
	Exactness Exactness
}

func (*Has) constraintNode() {}

// Links asserts that a relation instance has a player in some role.
type Links struct {
	Relation  Vertex
	Player    Vertex
	Role      Vertex
	Exactness Exactness
}

func (*Links) constraintNode() {}

// Sub asserts a subtype relationship between two types.
type Sub struct {
	Subtype   Vertex
	Supertype Vertex
	Exactness Exactness
}

func (*Sub) constraintNode() {}

// Owns asserts that a type declares ownership of an attribute type.
type Owns struct {
	Owner     Vertex
	Attribute Vertex
	Exactness Exactness
}

func (*Owns) constraintNode() {}

// Relates asserts that a relation type declares a role.
type Relates struct {
	Relation  Vertex
	Role      Vertex
	Exactness Exactness
}

func (*Relates) constraintNode() {}

// Plays asserts that a type's instances may fill a role.
type Plays struct {
	Player    Vertex
	Role      Vertex
	Exactness Exactness
}

func (*Plays) constraintNode() {}

// FunctionCall assigns the results of one function invocation to a tuple of
// variables. Assigned and Arguments are ordered.
type FunctionCall struct {
	Name      string
	Assigned  []Vertex
	Arguments []Vertex
}

func (*FunctionCall) constraintNode() {}

// Expression assigns the result of evaluating an expression to a variable.
type Expression struct {
	Text      string
	Assigned  Vertex
	Arguments []Vertex
}

func (*Expression) constraintNode() {}

// Is asserts that two variables are bound to the same concept.
type Is struct {
	Lhs Vertex
	Rhs Vertex
}

func (*Is) constraintNode() {}

// Iid pins a variable to a concrete instance identifier.
type Iid struct {
	Var Vertex
	IID string
}

func (*Iid) constraintNode() {}

// Comparison asserts an ordering or matching relation between two endpoints.
type Comparison struct {
	Lhs        Vertex
	Rhs        Vertex
	Comparator Comparator
}

func (*Comparison) constraintNode() {}

// Kind asserts the schema kind of a type variable.
type Kind struct {
	Kind TypeKind
	Type Vertex
}

func (*Kind) constraintNode() {}

// Label pins a type variable to a schema label.
type Label struct {
	Var   Vertex
	Label string
}

func (*Label) constraintNode() {}

// Value asserts the value type of an attribute type.
type Value struct {
	AttributeType Vertex
	ValueType     string
}

func (*Value) constraintNode() {}

// Disjunction wraps the alternative branches of an or-pattern. Each branch
// is a constraint list; the branch ordinal becomes the answer index of its
// resolved constraints.
type Disjunction struct {
	Branches [][]Constraint
}

func (*Disjunction) constraintNode() {}

// Negation wraps the constraints of a not-pattern.
type Negation struct {
	Body []Constraint
}

func (*Negation) constraintNode() {}

// Try wraps the constraints of an optional (try) pattern.
type Try struct {
	Body []Constraint
}

func (*Try) constraintNode() {}
