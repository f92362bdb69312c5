// Package diagnostic provides structured, non-fatal findings collected while
// a labeling config is parsed and linked.
//
// Parsing is permissive: an unresolved toName target or a label without an
// owning control does not fail the parse. Such conditions are recorded here so
// callers can inspect them before (or instead of) running strict validation.
//
// Key capabilities:
//   - Coded findings with severity
//   - The tag name and attribute a finding relates to
//   - "Did you mean" suggestions for unresolved references
package diagnostic
