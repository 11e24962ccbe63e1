package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rowgraph/rowgraph/internal/resolve"
)

// exportVertex is the JSON shape of one vertex.
type exportVertex struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// exportEdge is the JSON shape of one edge.
type exportEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
	Var    string `json:"var,omitempty"`
}

type exportGraph struct {
	Vertices []exportVertex `json:"vertices"`
	Edges    []exportEdge   `json:"edges"`
}

// MarshalJSON serializes the graph with vertices and edges in their
// deterministic sorted order, so equal graphs always produce equal bytes.
func (g *Graph) MarshalJSON() ([]byte, error) {
	out := exportGraph{
		Vertices: make([]exportVertex, 0, len(g.vertices)),
		Edges:    make([]exportEdge, 0, len(g.edges)),
	}
	for _, v := range g.Vertices() {
		out.Vertices = append(out.Vertices, exportVertex{
			Key:   v.Key(),
			Kind:  vertexKind(v),
			Label: v.Display(),
		})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, exportEdge(e))
	}
	return json.Marshal(out)
}

// WriteDOT writes the graph in Graphviz DOT form, vertices then edges,
// both in deterministic sorted order.
func (g *Graph) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph answer {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=LR;"); err != nil {
		return err
	}

	for _, v := range g.Vertices() {
		_, err := fmt.Fprintf(w, "  %s [label=%s];\n", dotQuote(v.Key()), dotQuote(v.Display()))
		if err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		var err error
		if e.Label == "" {
			_, err = fmt.Fprintf(w, "  %s -> %s;\n", dotQuote(e.Source), dotQuote(e.Target))
		} else {
			_, err = fmt.Fprintf(w, "  %s -> %s [label=%s];\n", dotQuote(e.Source), dotQuote(e.Target), dotQuote(e.Label))
		}
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// dotQuote renders a DOT double-quoted identifier.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// vertexKind tags the variant for JSON output.
func vertexKind(v resolve.DataVertex) string {
	switch v.(type) {
	case *resolve.ConceptVertex:
		return "concept"
	case *resolve.NamedRoleVertex:
		return "role"
	case *resolve.FunctionCallVertex:
		return "call"
	case *resolve.ExpressionVertex:
		return "expression"
	default:
		return "unknown"
	}
}
