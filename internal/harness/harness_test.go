package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/person_has_name.yaml")
	require.NoError(t, err)

	assert.Equal(t, "person_has_name", s.Name)
	assert.Equal(t, []string{"p", "n"}, s.Document.Query.Variables)
	require.Len(t, s.Document.Rows, 1)
	require.NotEmpty(t, s.Assertions)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/nope.yaml")
	assert.Error(t, err)
}

func TestLoadScenarioRequiresName(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/unnamed.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestRunScenarioAssertionsPass(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/person_has_name.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass, "assertion failures: %v", result.Errors)
	assert.Equal(t, 2, result.Graph.VertexCount())
	assert.Equal(t, 1, result.Graph.EdgeCount())
}

func TestRunScenarioAssertionFailure(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/person_has_name.yaml")
	require.NoError(t, err)
	s.Assertions = []Assertion{
		{Type: "edge", Source: "person#0x1", Target: `name("Bob")`},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not found in graph")
}

func TestRunScenarioWrongLabel(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/person_has_name.yaml")
	require.NoError(t, err)
	s.Assertions = []Assertion{
		{Type: "edge", Source: "person#0x1", Target: `name("Alice")`, Label: "owns"},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
}

func TestRunScenarioUnknownAssertionType(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/person_has_name.yaml")
	require.NoError(t, err)
	s.Assertions = []Assertion{{Type: "edge_weight"}}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "unknown assertion type")
}

func TestRunScenarioCompileError(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/person_has_name.yaml")
	require.NoError(t, err)
	s.Document.Query.Variables = nil // constraints now reference undeclared vars

	_, err = Run(s)
	assert.Error(t, err)
}

func TestGoldenSnapshot(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/person_has_name.yaml")
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, s))
}
