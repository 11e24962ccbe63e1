package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
query:
  variables: [p, n]
  constraints:
    - kind: isa
      instance: { var: p }
      type: { label: person }
      exactness: exact
    - kind: has
      owner: { var: p }
      attribute: { var: n }
rows:
  - p: { entity: { type: person, iid: "0x1" } }
    n: { attribute: { type: name, value: { type: string, literal: Alice } } }
  - p: { entity: { type: person, iid: "0x2" } }
`

func TestParseValidYAML(t *testing.T) {
	doc, err := Parse([]byte(validYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"p", "n"}, doc.Query.Variables)
	require.Len(t, doc.Query.Constraints, 2)
	assert.Equal(t, "isa", doc.Query.Constraints[0].Kind)
	assert.Equal(t, "exact", doc.Query.Constraints[0].Exactness)
	require.Len(t, doc.Rows, 2)

	binding := doc.Rows[0]["n"]
	require.NotNil(t, binding.Attribute)
	assert.Equal(t, "name", binding.Attribute.Type)
	assert.Equal(t, "Alice", binding.Attribute.Value.Literal)
}

func TestParseValidJSON(t *testing.T) {
	data := []byte(`{
		"query": {
			"variables": ["p"],
			"constraints": [
				{"kind": "iid", "var": {"var": "p"}, "iid": "0x1"}
			]
		},
		"rows": []
	}`)

	doc, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Query.Constraints, 1)
	assert.Equal(t, "0x1", doc.Query.Constraints[0].IID)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	data := []byte(`
query:
  variables: [p]
  constraints:
    - kind: teleports
      var: { var: p }
rows: []
`)
	_, err := Parse(data, FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestParseRejectsBadValueType(t *testing.T) {
	data := []byte(`
query:
  variables: [p]
  constraints: []
rows:
  - p: { value: { type: decimal, literal: "1.5" } }
`)
	_, err := Parse(data, FormatYAML)
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte(":\n  - ["), FormatYAML)
	assert.Error(t, err)
}

func TestParseNestedBranches(t *testing.T) {
	data := []byte(`
query:
  variables: [p, n]
  constraints:
    - kind: disjunction
      branches:
        - - kind: has
            owner: { var: p }
            attribute: { var: n }
        - - kind: negation
            body:
              - kind: iid
                var: { var: p }
                iid: "0x1"
rows: []
`)
	doc, err := Parse(data, FormatYAML)
	require.NoError(t, err)

	require.Len(t, doc.Query.Constraints, 1)
	disj := doc.Query.Constraints[0]
	require.Len(t, disj.Branches, 2)
	assert.Equal(t, "has", disj.Branches[0][0].Kind)
	assert.Equal(t, "negation", disj.Branches[1][0].Kind)
	require.Len(t, disj.Branches[1][0].Body, 1)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("answers.json"))
	assert.Equal(t, FormatJSON, FormatForPath("ANSWERS.JSON"))
	assert.Equal(t, FormatYAML, FormatForPath("answers.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("answers.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("answers"))
}
