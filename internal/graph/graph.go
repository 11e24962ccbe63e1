package graph

import (
	"sort"

	"github.com/rowgraph/rowgraph/internal/resolve"
)

// Edge is one directed labeled edge. Source and Target are vertex identity
// keys. Var carries the variable-name attribute on assign/arg edges and is
// empty elsewhere.
type Edge struct {
	Source string
	Target string
	Label  string
	Var    string
}

type pairKey struct {
	source string
	target string
}

// Graph is the accumulated conversion output: a vertex set deduplicated by
// identity and an edge set keyed by ordered vertex pair.
type Graph struct {
	vertices map[string]resolve.DataVertex
	edges    map[pairKey]Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]resolve.DataVertex),
		edges:    make(map[pairKey]Edge),
	}
}

// AddVertex inserts a vertex if no vertex with the same identity key
// exists. Idempotent.
func (g *Graph) AddVertex(v resolve.DataVertex) {
	key := v.Key()
	if _, ok := g.vertices[key]; !ok {
		g.vertices[key] = v
	}
}

// AddEdge inserts a directed edge from u to v. If an edge for the ordered
// (u, v) pair already exists the new edge is dropped, regardless of label.
// Both endpoints are inserted into the vertex set first.
// Returns true if the edge was inserted.
func (g *Graph) AddEdge(u, v resolve.DataVertex, label, varName string) bool {
	key := pairKey{source: u.Key(), target: v.Key()}
	if _, ok := g.edges[key]; ok {
		return false
	}
	g.AddVertex(u)
	g.AddVertex(v)
	g.edges[key] = Edge{Source: key.source, Target: key.target, Label: label, Var: varName}
	return true
}

// HasEdge reports whether an edge exists for the ordered key pair.
func (g *Graph) HasEdge(sourceKey, targetKey string) bool {
	_, ok := g.edges[pairKey{source: sourceKey, target: targetKey}]
	return ok
}

// Vertex returns the vertex stored under the given identity key.
func (g *Graph) Vertex(key string) (resolve.DataVertex, bool) {
	v, ok := g.vertices[key]
	return v, ok
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns all vertices ordered by identity key.
func (g *Graph) Vertices() []resolve.DataVertex {
	keys := make([]string, 0, len(g.vertices))
	for k := range g.vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]resolve.DataVertex, len(keys))
	for i, k := range keys {
		out[i] = g.vertices[k]
	}
	return out
}

// Edges returns all edges ordered by (source, target) key.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// Merge folds other into g, vertices first, then edges in other's
// deterministic order. Edges whose ordered pair already exists in g are
// dropped: first writer wins across the merge order, same as during
// accumulation.
func (g *Graph) Merge(other *Graph) {
	for _, v := range other.Vertices() {
		g.AddVertex(v)
	}
	for _, e := range other.Edges() {
		key := pairKey{source: e.Source, target: e.Target}
		if _, ok := g.edges[key]; !ok {
			g.edges[key] = e
		}
	}
}
