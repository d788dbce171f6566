package refactor

import "errors"

// ErrConflictingFixes is returned when two anchors from a single Fold call
// both produce differing fixes for the same node, violating Fold's
// assumption that its anchors' scopes are disjoint.
var ErrConflictingFixes = errors.New("refactor: conflicting fixes")

// ErrPrintInvariant is returned when printing a compilation unit does not
// reproduce the source text it was constructed from — a parser defect, not
// a transaction-time failure, but checked at transaction construction since
// that is the first point this package sees both the tree and the source.
var ErrPrintInvariant = errors.New("refactor: print invariant violated")

// ErrUnresolvedSymbol marks a non-fatal per-node failure: the affected node
// is skipped and recorded on the transaction Result rather than aborting.
var ErrUnresolvedSymbol = errors.New("refactor: unresolved symbol")
