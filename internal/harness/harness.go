package harness

import (
	"fmt"

	"github.com/rowgraph/rowgraph/internal/convert"
)

// Run converts the scenario's answer document and evaluates its
// assertions against the resulting graph.
//
// Conversion errors (a document that fails to compile, an unknown
// constraint kind) are returned as errors; assertion failures are
// reported through the Result.
func Run(scenario *Scenario) (*Result, error) {
	pipeline, constraints, rows, err := scenario.Document.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: compile: %w", scenario.Name, err)
	}

	session := convert.NewSession(pipeline, constraints)
	for i, row := range rows {
		if err := session.ConvertRow(row); err != nil {
			return nil, fmt.Errorf("scenario %s: row %d: %w", scenario.Name, i, err)
		}
	}

	result := NewResult(session.Finish())

	for _, assertion := range scenario.Assertions {
		if err := evaluate(result.Graph, assertion); err != nil {
			result.AddError(err.Error())
		}
	}

	return result, nil
}
