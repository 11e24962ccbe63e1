// Package ir defines the abstract query intermediate representation that
// the conversion engine consumes: the constraint tree produced by matching
// a query, the abstract endpoints each constraint refers to, and the
// pipeline that maps query variables to their declared names.
//
// Constraint and Vertex are sealed interfaces - only types in this package
// implement them. The marker method pattern prevents external
// implementations and enables exhaustive type switches in the resolver: a
// new constraint kind added here without a matching dispatch arm surfaces
// as an UnsupportedKindError at runtime, never as silently dropped data.
//
// Dependency rule: ir imports only internal/concept (for literal values).
// Every other internal package may import ir; ir imports nothing else
// internal.
package ir
