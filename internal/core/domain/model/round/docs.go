// Package round implements round assembly: shipments are queued into a
// delivery round in order, each membership carrying a position one above the
// round's current maximum.
//
// Status flow is PLANNED -> IN_PROGRESS -> COMPLETED, with CANCELLED reachable
// from both non-terminal states. Rounds in a terminal state reject membership
// and crew changes.
package round
