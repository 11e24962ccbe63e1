package harness

import (
	"fmt"
	"strings"

	"github.com/rowgraph/rowgraph/internal/graph"
)

// AssertionError is returned when an assertion fails.
// It includes the graph's edges to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Edges    []string // Rendered edges for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Edges) > 0 {
		fmt.Fprintf(&buf, "\nGraph edges:\n")
		for _, edge := range e.Edges {
			fmt.Fprintf(&buf, "  %s\n", edge)
		}
	}

	return buf.String()
}

// evaluate runs one assertion against the graph.
func evaluate(g *graph.Graph, a Assertion) error {
	switch a.Type {
	case "edge":
		return assertEdge(g, a)
	case "no_edge":
		return assertNoEdge(g, a)
	case "vertex_count":
		if g.VertexCount() != a.Count {
			return &AssertionError{
				Type:     "vertex_count",
				Expected: fmt.Sprintf("%d vertices", a.Count),
				Actual:   fmt.Sprintf("%d vertices", g.VertexCount()),
				Edges:    renderEdges(g),
			}
		}
		return nil
	case "edge_count":
		if g.EdgeCount() != a.Count {
			return &AssertionError{
				Type:     "edge_count",
				Expected: fmt.Sprintf("%d edges", a.Count),
				Actual:   fmt.Sprintf("%d edges", g.EdgeCount()),
				Edges:    renderEdges(g),
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertEdge checks that an edge exists between the displayed vertices,
// with the given label if one is specified.
func assertEdge(g *graph.Graph, a Assertion) error {
	edge, ok := findEdge(g, a.Source, a.Target)
	if !ok {
		return &AssertionError{
			Type:     "edge",
			Expected: fmt.Sprintf("edge %s -> %s", a.Source, a.Target),
			Actual:   "not found in graph",
			Edges:    renderEdges(g),
		}
	}
	if a.Label != "" && edge.Label != a.Label {
		return &AssertionError{
			Type:     "edge",
			Expected: fmt.Sprintf("edge %s -> %s with label %q", a.Source, a.Target, a.Label),
			Actual:   fmt.Sprintf("label %q", edge.Label),
			Edges:    renderEdges(g),
		}
	}
	return nil
}

// assertNoEdge checks that no edge exists between the displayed vertices.
func assertNoEdge(g *graph.Graph, a Assertion) error {
	if edge, ok := findEdge(g, a.Source, a.Target); ok {
		return &AssertionError{
			Type:     "no_edge",
			Expected: fmt.Sprintf("no edge %s -> %s", a.Source, a.Target),
			Actual:   fmt.Sprintf("edge exists with label %q", edge.Label),
			Edges:    renderEdges(g),
		}
	}
	return nil
}

// findEdge locates an edge by the display strings of its endpoints.
func findEdge(g *graph.Graph, sourceDisplay, targetDisplay string) (graph.Edge, bool) {
	displays := displayIndex(g)
	for _, edge := range g.Edges() {
		if displays[edge.Source] == sourceDisplay && displays[edge.Target] == targetDisplay {
			return edge, true
		}
	}
	return graph.Edge{}, false
}

// displayIndex maps vertex keys to their display strings.
func displayIndex(g *graph.Graph) map[string]string {
	index := make(map[string]string, g.VertexCount())
	for _, v := range g.Vertices() {
		index[v.Key()] = v.Display()
	}
	return index
}

// renderEdges formats every edge for failure messages.
func renderEdges(g *graph.Graph) []string {
	displays := displayIndex(g)
	edges := g.Edges()
	rendered := make([]string, len(edges))
	for i, edge := range edges {
		rendered[i] = fmt.Sprintf("%s -[%s]-> %s", displays[edge.Source], edge.Label, displays[edge.Target])
	}
	return rendered
}
