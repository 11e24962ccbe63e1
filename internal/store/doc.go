// Package store provides durable storage for recorded answer sets.
//
// An answer set is one query structure plus the rows matched for it,
// saved under a caller-chosen name so a conversion can be replayed later
// without re-running the match. Storage is SQLite with WAL mode; the
// query and each row's bindings are serialized to canonical JSON so that
// replaying a recorded set is byte-for-byte deterministic.
package store
