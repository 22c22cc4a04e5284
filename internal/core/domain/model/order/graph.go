package order

import (
	"errors"
	"fmt"
)

// ReviewThreshold is the order amount above which a pending order may not
// enter preparation directly and must go through review instead.
const ReviewThreshold = 1000.0

// ErrTransitionNotAllowed is the sentinel wrapped by every structural
// transition rejection. Use errors.Is to classify; the wrapping error
// carries the human-readable reason.
var ErrTransitionNotAllowed = errors.New("transition not allowed")

// transition pairs an action with the state it leads to.
type transition struct {
	action Action
	next   State
}

// transitions is the fixed state graph. Per-state slices are ordered so that
// AllowedActions output is deterministic. Terminal states have no entry.
var transitions = map[State][]transition{
	Pending: {
		{StartPreparation, InPreparation},
		{SubmitForReview, Review},
		{Cancel, Cancelled},
	},
	Review: {
		{Approve, InPreparation},
		{Cancel, Cancelled},
	},
	InPreparation: {
		{Ship, Shipped},
		{Cancel, Cancelled},
	},
	Shipped: {
		{Deliver, Delivered},
	},
	Delivered: {},
	Cancelled: {},
}

// Graph validates order state transitions against the fixed transition table
// and the amount-based review policy. It is pure and stateless; a zero value
// is not usable, construct it with NewGraph.
//
// Example:
//
//	graph := order.NewGraph()
//	next, err := graph.Validate(order.Pending, order.Ship, 100)
//	if errors.Is(err, order.ErrTransitionNotAllowed) {
//	    // "ship" is not legal from "pending"
//	}
type Graph struct{}

// NewGraph creates the order state graph.
func NewGraph() Graph {
	return Graph{}
}

// Validate decides whether action may be applied to an order currently in
// state current with the given amount, and returns the resulting state.
//
// The amount policy is checked before the table: a pending order with an
// amount over ReviewThreshold may not start preparation directly, even
// though (pending, start_preparation) is otherwise legal.
//
// Returns a ValueIsInvalidError if either enum value is unrecognized, or an
// error wrapping ErrTransitionNotAllowed with the rejection reason.
func (Graph) Validate(current State, action Action, amount float64) (State, error) {
	if err := current.Validate(); err != nil {
		return "", err
	}
	if err := action.Validate(); err != nil {
		return "", err
	}

	if current == Pending && action == StartPreparation && amount > ReviewThreshold {
		return "", fmt.Errorf("%w: orders over $%.0f require review", ErrTransitionNotAllowed, ReviewThreshold)
	}

	for _, t := range transitions[current] {
		if t.action == action {
			return t.next, nil
		}
	}

	return "", fmt.Errorf("%w: action %q is not valid from state %q",
		ErrTransitionNotAllowed, action.String(), current.String())
}

// AllowedActions returns the actions that the transition table permits from
// the given state, in table order. Terminal and unrecognized states yield an
// empty slice, never an error.
func (Graph) AllowedActions(current State) []Action {
	entries := transitions[current]
	actions := make([]Action, 0, len(entries))
	for _, t := range entries {
		actions = append(actions, t.action)
	}
	return actions
}
