package order

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// CreationAction is the action recorded on the initial log entry written when
// an order is created. It is not part of the transition table.
const CreationAction = "create"

// TransitionLog is an immutable audit record of one committed state change.
// Exactly one entry is appended per committed transition; entries are never
// updated or deleted. PreviousState is nil only on the creation entry.
type TransitionLog struct {
	id            kernel.UUID
	orderID       kernel.UUID
	previousState *State
	newState      State
	actionTaken   string
	occurredAt    time.Time
}

// NewTransitionLog creates the audit record for a committed transition.
func NewTransitionLog(orderID kernel.UUID, previous State, next State, action Action) (TransitionLog, error) {
	if err := orderID.Validate(); err != nil {
		return TransitionLog{}, err
	}
	if err := previous.Validate(); err != nil {
		return TransitionLog{}, err
	}
	if err := next.Validate(); err != nil {
		return TransitionLog{}, err
	}
	if err := action.Validate(); err != nil {
		return TransitionLog{}, err
	}

	prev := previous
	return TransitionLog{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		previousState: &prev,
		newState:      next,
		actionTaken:   action.String(),
		occurredAt:    time.Now().UTC(),
	}, nil
}

// NewCreationLog creates the initial audit record for a newly created order.
// The previous state is nil and the action is CreationAction.
func NewCreationLog(orderID kernel.UUID, initial State) (TransitionLog, error) {
	if err := orderID.Validate(); err != nil {
		return TransitionLog{}, err
	}
	if err := initial.Validate(); err != nil {
		return TransitionLog{}, err
	}

	return TransitionLog{
		id:          kernel.NewUUID(),
		orderID:     orderID,
		newState:    initial,
		actionTaken: CreationAction,
		occurredAt:  time.Now().UTC(),
	}, nil
}

// RestoreTransitionLog reconstructs a log entry from persistence.
func RestoreTransitionLog(
	id, orderID kernel.UUID,
	previous *State,
	next State,
	action string,
	occurredAt time.Time,
) TransitionLog {
	return TransitionLog{
		id:            id,
		orderID:       orderID,
		previousState: previous,
		newState:      next,
		actionTaken:   action,
		occurredAt:    occurredAt,
	}
}

// ID returns the log entry identifier.
func (l TransitionLog) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the order this entry belongs to.
func (l TransitionLog) OrderID() kernel.UUID {
	return l.orderID
}

// PreviousState returns the state before the transition, or nil for the
// creation entry.
func (l TransitionLog) PreviousState() *State {
	if l.previousState == nil {
		return nil
	}
	prev := *l.previousState
	return &prev
}

// NewState returns the state after the transition.
func (l TransitionLog) NewState() State {
	return l.newState
}

// ActionTaken returns the action that caused the transition.
func (l TransitionLog) ActionTaken() string {
	return l.actionTaken
}

// OccurredAt returns when the transition was committed.
func (l TransitionLog) OccurredAt() time.Time {
	return l.occurredAt
}
