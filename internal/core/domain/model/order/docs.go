// Package order provides the domain entities and business logic for order
// lifecycle management. It implements the Order aggregate root, the fixed
// state graph that governs legal transitions, and the audit records produced
// by committed transitions.
//
// The package includes:
//   - Order: The aggregate root carrying amount, line items, and lifecycle state
//   - State/Action: String-backed enums parseable from untrusted input
//   - Graph: The fixed transition table plus the amount-based review policy
//   - TransitionLog: Immutable, append-only audit record of state changes
//   - Ticket: Cancellation record with a mandatory reason
//
// Key business rules:
//   - delivered and cancelled are terminal states with no outgoing transitions
//   - A pending order over the review threshold cannot start preparation directly
//   - Every committed transition appends exactly one TransitionLog entry
//   - Cancelling an order requires a non-empty reason and produces a Ticket
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
