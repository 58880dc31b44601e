// Package diagnostic provides structured errors, warnings, and notes
// emitted while loading a schema and resolving conformances.
//
// Key capabilities:
//   - Malformed-schema reports (dangling references, duplicate names)
//   - Conformance resolution warnings keyed by kind and category
//   - Error folding for strict-mode runs
package diagnostic
