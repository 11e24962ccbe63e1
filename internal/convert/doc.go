// Package convert drives the conversion of a matched answer stream into
// one graph.
//
// A Session owns exactly one accumulating graph. The caller feeds it
// answer rows one at a time; for each row the session walks the constraint
// tree, resolving each constraint and handing the resolved record to the
// graph builder. Branch wrappers are descended into rather than drawn:
// disjunction branches pass their ordinal down as the answer index,
// negation and try bodies inherit the index of their surroundings.
//
// Processing is entirely synchronous and single-pass. Expected absences
// (unbound variables, skipped branches) are logged at debug level and
// continue; an unsupported constraint kind aborts the session, since it
// signals version skew that skipping would silently misrepresent.
package convert
