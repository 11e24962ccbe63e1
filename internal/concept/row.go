package concept

// Row is one answer row: a binding of variable names to concrete concepts.
// A variable missing from the row is simply unbound in this answer, which
// is an expected outcome (branches that did not execute leave their
// variables unbound), not an error.
type Row map[string]Concept

// Get returns the concept bound to the named variable, if any.
func (r Row) Get(name string) (Concept, bool) {
	c, ok := r[name]
	return c, ok
}
