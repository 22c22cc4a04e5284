package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move an order through its
// lifecycle by applying an action such as "approve" or "ship".
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, "cancel", "customer changed their mind")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
//	fmt.Printf("order moved from %s to %s", result.PreviousState, result.NewState)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	action             string
	cancellationReason string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to apply an action to an order.
// Validates that the order ID is valid and the action is not empty. The
// action string itself is resolved against the known action set by the
// handler, so typos surface as domain errors rather than construction errors.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	action string,
	cancellationReason string,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	cmd.cancellationReason = cancellationReason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the requested lifecycle action.
func (c TransitionOrderCommand) Action() string {
	return c.action
}

// CancellationReason returns the reason supplied with a cancel request.
// Empty for every other action.
func (c TransitionOrderCommand) CancellationReason() string {
	return c.cancellationReason
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}

	c.action = action
	return nil
}
