// Package answers defines the on-disk interchange format for recorded
// query answers: the variable declarations and constraint tree of one
// matched query, plus the rows its evaluation produced.
//
// Documents are written in YAML or JSON, validated against an embedded CUE
// schema before decoding, and compiled into the in-memory forms the
// conversion engine consumes (ir.Pipeline, ir.Constraint tree,
// concept.Row bindings).
package answers
