package answers

// Document is one recorded answer set: a query structure plus the rows
// matched for it.
type Document struct {
	Query QueryDoc `yaml:"query" json:"query"`
	Rows  []RowDoc `yaml:"rows" json:"rows"`
}

// QueryDoc carries the declared variables (position is the variable ID)
// and the constraint tree.
type QueryDoc struct {
	Variables   []string        `yaml:"variables" json:"variables"`
	Constraints []ConstraintDoc `yaml:"constraints" json:"constraints"`
}

// ConstraintDoc is one constraint node. Kind selects the variant; the
// remaining fields are kind-specific and left empty elsewhere.
type ConstraintDoc struct {
	Kind string `yaml:"kind" json:"kind"`

	// Relational endpoints.
	Instance  *VertexDoc `yaml:"instance,omitempty" json:"instance,omitempty"`
	Type      *VertexDoc `yaml:"type,omitempty" json:"type,omitempty"`
	Owner     *VertexDoc `yaml:"owner,omitempty" json:"owner,omitempty"`
	Attribute *VertexDoc `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Relation  *VertexDoc `yaml:"relation,omitempty" json:"relation,omitempty"`
	Player    *VertexDoc `yaml:"player,omitempty" json:"player,omitempty"`
	Role      *VertexDoc `yaml:"role,omitempty" json:"role,omitempty"`
	Subtype   *VertexDoc `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Supertype *VertexDoc `yaml:"supertype,omitempty" json:"supertype,omitempty"`
	Lhs       *VertexDoc `yaml:"lhs,omitempty" json:"lhs,omitempty"`
	Rhs       *VertexDoc `yaml:"rhs,omitempty" json:"rhs,omitempty"`
	Var       *VertexDoc `yaml:"var,omitempty" json:"var,omitempty"`

	Exactness string `yaml:"exactness,omitempty" json:"exactness,omitempty"`

	// Function calls and expressions.
	Name      string      `yaml:"name,omitempty" json:"name,omitempty"`
	Text      string      `yaml:"text,omitempty" json:"text,omitempty"`
	Assigned  []VertexDoc `yaml:"assigned,omitempty" json:"assigned,omitempty"`
	Arguments []VertexDoc `yaml:"arguments,omitempty" json:"arguments,omitempty"`

	// Scalar facts.
	Comparator string `yaml:"comparator,omitempty" json:"comparator,omitempty"`
	IID        string `yaml:"iid,omitempty" json:"iid,omitempty"`
	TypeKind   string `yaml:"type_kind,omitempty" json:"type_kind,omitempty"`
	Label      string `yaml:"label,omitempty" json:"label,omitempty"`
	ValueType  string `yaml:"value_type,omitempty" json:"value_type,omitempty"`

	// Branch wrappers.
	Branches [][]ConstraintDoc `yaml:"branches,omitempty" json:"branches,omitempty"`
	Body     []ConstraintDoc   `yaml:"body,omitempty" json:"body,omitempty"`
}

// VertexDoc is one abstract endpoint. Exactly one field must be set.
type VertexDoc struct {
	Label *string     `yaml:"label,omitempty" json:"label,omitempty"`
	Var   *string     `yaml:"var,omitempty" json:"var,omitempty"`
	Value *ValueDoc   `yaml:"value,omitempty" json:"value,omitempty"`
	Role  *RoleRefDoc `yaml:"role,omitempty" json:"role,omitempty"`
}

// RoleRefDoc is a named-role endpoint: a variable plus a display name.
type RoleRefDoc struct {
	Var  string `yaml:"var" json:"var"`
	Name string `yaml:"name" json:"name"`
}

// ValueDoc is a literal value with its value-type tag.
type ValueDoc struct {
	Type    string `yaml:"type" json:"type"`
	Literal string `yaml:"literal" json:"literal"`
}

// RowDoc maps variable names to the concepts bound in one answer row.
type RowDoc map[string]ConceptDoc

// ConceptDoc is one bound value. Exactly one field must be set.
type ConceptDoc struct {
	Entity    *InstanceDoc  `yaml:"entity,omitempty" json:"entity,omitempty"`
	Relation  *InstanceDoc  `yaml:"relation,omitempty" json:"relation,omitempty"`
	Attribute *AttributeDoc `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Type      *TypeDoc      `yaml:"type,omitempty" json:"type,omitempty"`
	Role      *RoleDoc      `yaml:"role,omitempty" json:"role,omitempty"`
	Value     *ValueDoc     `yaml:"value,omitempty" json:"value,omitempty"`
}

// InstanceDoc identifies an entity or relation instance.
type InstanceDoc struct {
	Type string `yaml:"type" json:"type"`
	IID  string `yaml:"iid" json:"iid"`
}

// AttributeDoc identifies an attribute instance by type and value.
type AttributeDoc struct {
	Type  string   `yaml:"type" json:"type"`
	Value ValueDoc `yaml:"value" json:"value"`
}

// TypeDoc identifies a schema type.
type TypeDoc struct {
	Label string `yaml:"label" json:"label"`
}

// RoleDoc identifies a role type scoped to its relation.
type RoleDoc struct {
	Relation string `yaml:"relation" json:"relation"`
	Name     string `yaml:"name" json:"name"`
}
