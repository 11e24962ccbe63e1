package concept

import (
	"fmt"
	"strconv"
)

// Concept is a sealed interface over the concrete values an answer row can
// bind: data instances (entities, relations, attributes), schema types,
// role types, and literal values.
//
// Every Concept has a stable identity key. Two Concepts are the same graph
// vertex iff their keys are equal; keys never depend on which row or
// constraint produced the value.
type Concept interface {
	conceptNode() // Marker method - seals interface to this package

	// Key returns the identity key. Stable across rows and sessions.
	Key() string

	// Display returns the human-readable rendering used for graph labels.
	Display() string
}

// Entity is a data instance of an entity type, identified by its IID.
type Entity struct {
	Type string // type label, e.g. "person"
	IID  string // instance identifier, e.g. "0x1f"
}

func (Entity) conceptNode() {}

func (e Entity) Key() string { return "entity:" + e.Type + "#" + e.IID }

func (e Entity) Display() string { return e.Type + "#" + e.IID }

// Relation is a data instance of a relation type, identified by its IID.
type Relation struct {
	Type string
	IID  string
}

func (Relation) conceptNode() {}

func (r Relation) Key() string { return "relation:" + r.Type + "#" + r.IID }

func (r Relation) Display() string { return r.Type + "#" + r.IID }

// Attribute is a data instance of an attribute type. Attributes are
// value-identified: the same type and value is the same attribute.
type Attribute struct {
	Type  string
	Value Value
}

func (Attribute) conceptNode() {}

func (a Attribute) Key() string { return "attribute:" + a.Type + "=" + a.Value.Key() }

func (a Attribute) Display() string { return a.Type + "(" + a.Value.Display() + ")" }

// Type is a schema type (entity, relation, or attribute type), identified
// by its label.
type Type struct {
	Label string
}

func (Type) conceptNode() {}

func (t Type) Key() string { return "type:" + t.Label }

func (t Type) Display() string { return t.Label }

// Role is a role type scoped to its defining relation type.
type Role struct {
	Relation string // defining relation type label
	Name     string // role name, e.g. "employee"
}

func (Role) conceptNode() {}

func (r Role) Key() string { return "role:" + r.Relation + ":" + r.Name }

func (r Role) Display() string { return r.Relation + ":" + r.Name }

// ValueKind tags the runtime type of a literal Value.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInteger
	ValueDouble
	ValueBoolean
	ValueDateTime
)

// String returns the value-type tag as written in answer documents.
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueInteger:
		return "integer"
	case ValueDouble:
		return "double"
	case ValueBoolean:
		return "boolean"
	case ValueDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("valuekind(%d)", int(k))
	}
}

// Value is a literal value: a standalone value concept or the payload of an
// attribute. Literal holds the normalized textual rendering (base-10 for
// integers, shortest round-trip form for doubles, RFC 3339 for datetimes);
// identity is the kind plus that rendering.
type Value struct {
	Kind    ValueKind
	Literal string
}

func (Value) conceptNode() {}

func (v Value) Key() string { return "value:" + v.Kind.String() + ":" + v.Literal }

// Display quotes string values and renders everything else bare.
func (v Value) Display() string {
	if v.Kind == ValueString {
		return `"` + v.Literal + `"`
	}
	return v.Literal
}

// StringValue builds a string literal.
func StringValue(s string) Value { return Value{Kind: ValueString, Literal: s} }

// IntegerValue builds an integer literal.
func IntegerValue(n int64) Value { return Value{Kind: ValueInteger, Literal: fmt.Sprintf("%d", n)} }

// DoubleValue builds a double literal with the shortest rendering that
// round-trips through ParseFloat.
func DoubleValue(f float64) Value {
	return Value{Kind: ValueDouble, Literal: strconv.FormatFloat(f, 'g', -1, 64)}
}

// BooleanValue builds a boolean literal.
func BooleanValue(b bool) Value {
	if b {
		return Value{Kind: ValueBoolean, Literal: "true"}
	}
	return Value{Kind: ValueBoolean, Literal: "false"}
}
