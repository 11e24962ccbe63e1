// Package resolve turns abstract constraint endpoints into identity-stable
// graph vertices and whole constraints into typed resolved records, one
// answer row at a time.
//
// Two outcome classes run through this package:
//
// Expected absence: an endpoint that cannot be drawn for this row (unbound
// variable, anonymous variable, unresolved role) resolves to nil. Absent
// endpoints are carried into the resolved record unchanged; the emission
// layer decides whether anything is drawn. Absence is never an error.
//
// Contract violation: a constraint kind outside the closed ir set reaching
// Constraint is a build/version skew between this engine and the upstream
// query schema. It fails with UnsupportedKindError naming the concrete
// kind and must abort the conversion - skipping it would silently
// misrepresent the answer.
package resolve
