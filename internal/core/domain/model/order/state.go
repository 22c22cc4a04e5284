package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// State represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──┬──> in_preparation ──> shipped ──> delivered
//	          │           ^
//	          └> review ──┘
//	(pending, review and in_preparation may also cancel)
//
// Delivered and cancelled are terminal: no action leads out of them.
// State is a value object persisted by its string representation; use
// ParseState to convert untrusted input.
type State string

const (
	// Pending is the initial state of every newly created order.
	Pending State = "pending"

	// Review holds orders that need manual approval before preparation.
	Review State = "review"

	// InPreparation indicates the order has been accepted and is being prepared.
	InPreparation State = "in_preparation"

	// Shipped indicates the order has left preparation and is in transit.
	Shipped State = "shipped"

	// Delivered is a terminal state: the order reached the customer.
	Delivered State = "delivered"

	// Cancelled is a terminal state: the order was cancelled with a reason.
	Cancelled State = "cancelled"
)

// Action represents a command that moves an order between states.
// Use ParseAction to convert untrusted input.
type Action string

const (
	// SubmitForReview sends a pending order to manual review.
	SubmitForReview Action = "submit_for_review"

	// Approve releases a reviewed order into preparation.
	Approve Action = "approve"

	// StartPreparation moves a pending order directly into preparation.
	StartPreparation Action = "start_preparation"

	// Ship marks a prepared order as shipped.
	Ship Action = "ship"

	// Deliver marks a shipped order as delivered.
	Deliver Action = "deliver"

	// Cancel cancels the order. Requires a cancellation reason.
	Cancel Action = "cancel"
)

// ParseState converts a raw string into a State.
// Returns a ValueIsInvalidError for anything outside the known state set.
func ParseState(s string) (State, error) {
	state := State(s)
	if err := state.Validate(); err != nil {
		return "", err
	}
	return state, nil
}

// ParseAction converts a raw string into an Action.
// Returns a ValueIsInvalidError for anything outside the known action set.
func ParseAction(s string) (Action, error) {
	action := Action(s)
	if err := action.Validate(); err != nil {
		return "", err
	}
	return action, nil
}

// Validate checks that the State holds one of the known state values.
func (s State) Validate() error {
	switch s {
	case Pending, Review, InPreparation, Shipped, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%q is not a recognized state", string(s)))
	}
}

// IsTerminal reports whether no action can move the order out of this state.
func (s State) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// Validate checks that the Action holds one of the known action values.
func (a Action) Validate() error {
	switch a {
	case SubmitForReview, Approve, StartPreparation, Ship, Deliver, Cancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a recognized action", string(a)))
	}
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}
