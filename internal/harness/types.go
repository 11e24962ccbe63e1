package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rowgraph/rowgraph/internal/answers"
	"github.com/rowgraph/rowgraph/internal/graph"
)

// Scenario is one conformance test case: an answer document plus the
// assertions its converted graph must satisfy.
type Scenario struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Document    answers.Document `yaml:"document"`
	Assertions  []Assertion      `yaml:"assertions,omitempty"`
}

// Assertion is one declarative check against the converted graph.
// Type selects the check; the remaining fields are type-specific.
type Assertion struct {
	Type   string `yaml:"type"`             // edge | no_edge | vertex_count | edge_count
	Source string `yaml:"source,omitempty"` // vertex display string
	Target string `yaml:"target,omitempty"` // vertex display string
	Label  string `yaml:"label,omitempty"`  // expected edge label (edge only; empty matches any)
	Count  int    `yaml:"count,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: true if all assertions held.
	Pass bool `json:"pass"`

	// Graph is the converted graph, kept for golden comparison.
	Graph *graph.Graph `json:"-"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(g *graph.Graph) *Result {
	return &Result{
		Pass:   true,
		Graph:  g,
		Errors: []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// LoadScenario reads and decodes a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	return &s, nil
}
