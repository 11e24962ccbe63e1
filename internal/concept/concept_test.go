package concept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityIdentity(t *testing.T) {
	a := Entity{Type: "person", IID: "0x1f"}
	b := Entity{Type: "person", IID: "0x1f"}
	c := Entity{Type: "person", IID: "0x20"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, "person#0x1f", a.Display())
}

func TestEntityAndRelationKeysDisjoint(t *testing.T) {
	// Same type label and IID, different concept kind: must not collide.
	e := Entity{Type: "thing", IID: "0x1"}
	r := Relation{Type: "thing", IID: "0x1"}

	assert.NotEqual(t, e.Key(), r.Key())
	assert.Equal(t, e.Display(), r.Display())
}

func TestAttributeIsValueIdentified(t *testing.T) {
	a := Attribute{Type: "name", Value: StringValue("Alice")}
	b := Attribute{Type: "name", Value: StringValue("Alice")}
	c := Attribute{Type: "name", Value: StringValue("Bob")}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, `name("Alice")`, a.Display())
}

func TestAttributeKindInKey(t *testing.T) {
	// "30" as integer and as string are different attributes.
	i := Attribute{Type: "age", Value: IntegerValue(30)}
	s := Attribute{Type: "age", Value: StringValue("30")}

	assert.NotEqual(t, i.Key(), s.Key())
}

func TestTypeAndRole(t *testing.T) {
	assert.Equal(t, "type:person", Type{Label: "person"}.Key())
	assert.Equal(t, "person", Type{Label: "person"}.Display())

	r := Role{Relation: "employment", Name: "employee"}
	assert.Equal(t, "role:employment:employee", r.Key())
	assert.Equal(t, "employment:employee", r.Display())
}

func TestValueConstructors(t *testing.T) {
	assert.Equal(t, Value{Kind: ValueInteger, Literal: "42"}, IntegerValue(42))
	assert.Equal(t, Value{Kind: ValueBoolean, Literal: "true"}, BooleanValue(true))
	assert.Equal(t, Value{Kind: ValueBoolean, Literal: "false"}, BooleanValue(false))
	assert.Equal(t, Value{Kind: ValueDouble, Literal: "2.5"}, DoubleValue(2.5))
	assert.Equal(t, Value{Kind: ValueDouble, Literal: "0.1"}, DoubleValue(0.1))
}

func TestValueDisplayQuotesStringsOnly(t *testing.T) {
	assert.Equal(t, `"Alice"`, StringValue("Alice").Display())
	assert.Equal(t, "42", IntegerValue(42).Display())
	assert.Equal(t, "true", BooleanValue(true).Display())
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "string", ValueString.String())
	assert.Equal(t, "integer", ValueInteger.String())
	assert.Equal(t, "double", ValueDouble.String())
	assert.Equal(t, "boolean", ValueBoolean.String())
	assert.Equal(t, "datetime", ValueDateTime.String())
}

func TestRowGet(t *testing.T) {
	row := Row{"p": Entity{Type: "person", IID: "0x1"}}

	got, ok := row.Get("p")
	assert.True(t, ok)
	assert.Equal(t, Entity{Type: "person", IID: "0x1"}, got)

	_, ok = row.Get("q")
	assert.False(t, ok)
}
