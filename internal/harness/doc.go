// Package harness provides conformance testing for answer-to-graph
// conversion.
//
// The harness loads scenario files, runs the conversion over the embedded
// answer document, and validates the resulting graph with declarative
// assertions or golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	document:
//	  query:
//	    variables: [p, n]
//	    constraints:
//	      - kind: has
//	        owner: { var: p }
//	        attribute: { var: n }
//	  rows:
//	    - p: { entity: { type: person, iid: "0x1" } }
//	      n: { attribute: { type: name, value: { type: string, literal: Alice } } }
//	assertions:
//	  - type: edge
//	    source: person#0x1
//	    target: name("Alice")
//	    label: has
//	  - type: vertex_count
//	    count: 2
//
// # Assertion Types
//
//   - edge: an edge with the given source/target displays (and label, if set) exists
//   - no_edge: no edge exists between the given source/target displays
//   - vertex_count: the graph holds exactly count vertices
//   - edge_count: the graph holds exactly count edges
//
// Sources and targets are matched by vertex display strings, which is what
// scenario authors see in rendered output.
//
// # Determinism
//
// Conversion is deterministic for a fixed document, so scenario results are
// stable across runs and suitable for golden snapshot comparison.
package harness
