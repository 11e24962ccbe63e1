// Package graph accumulates resolved constraints into a directed, labeled
// graph.
//
// The Graph enforces one deduplication rule throughout: at most one edge
// per ordered (source, target) vertex pair. The first writer wins; later
// adds for the same ordered pair are silently dropped even when their
// labels differ. Downstream consumers depend on this exact behavior, so
// the Graph exposes no multi-edge insert. Vertex insertion is implicit and
// idempotent: adding an edge ensures both endpoints exist.
//
// The Builder is the emission dispatch: one Add method per drawable
// constraint kind, each encoding that kind's preconditions, edge direction
// and label. Kind, Label, Value, Is, Iid and Comparison describe schema or
// scalar facts rather than graph structure and are intentionally never
// drawn.
//
// A Graph belongs to exactly one conversion session and is not safe for
// concurrent mutation. Callers wanting parallel row processing must build
// independent graphs and merge them with Merge, which applies the same
// first-writer-wins rule across the merge order.
package graph
