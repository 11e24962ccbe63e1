package ir

import "fmt"

// Exactness distinguishes a constraint that must match precisely from one
// that permits subtype-compatible matches. It affects edge labels only,
// never vertex identity.
type Exactness int

const (
	// Inferred permits subtype substitution.
	Inferred Exactness = iota
	// Exact requires a precise match. Exact relational constraints get a
	// "!"-suffixed edge label.
	Exact
)

// String returns the exactness tag as written in answer documents.
func (e Exactness) String() string {
	if e == Exact {
		return "exact"
	}
	return "inferred"
}

// Comparator is the operator of a comparison constraint. Carried through
// resolution unchanged; comparisons are never drawn.
type Comparator string

const (
	CompEq       Comparator = "=="
	CompNeq      Comparator = "!="
	CompLt       Comparator = "<"
	CompLte      Comparator = "<="
	CompGt       Comparator = ">"
	CompGte      Comparator = ">="
	CompLike     Comparator = "like"
	CompContains Comparator = "contains"
)

// TypeKind is the schema kind asserted by a kind constraint.
type TypeKind int

const (
	KindEntity TypeKind = iota
	KindRelation
	KindAttribute
	KindRole
)

// String returns the kind tag as written in answer documents.
func (k TypeKind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindRelation:
		return "relation"
	case KindAttribute:
		return "attribute"
	case KindRole:
		return "role"
	default:
		return fmt.Sprintf("typekind(%d)", int(k))
	}
}
