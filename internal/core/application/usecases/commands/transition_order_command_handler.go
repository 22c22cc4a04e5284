package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/rules"
)

// ErrTransitionBlocked indicates that a business rule vetoed the requested
// transition before the state graph was consulted.
var ErrTransitionBlocked = errors.New("transition blocked by business rule")

// TransitionResult reports the outcome of a successful transition, including
// any side effects the rule engine produced along the way.
type TransitionResult struct {
	OrderID       kernel.UUID
	PreviousState order.State
	NewState      order.State
	ActionTaken   order.Action
	Metadata      map[string]any
	Calculations  map[string]any
}

// TransitionOrderCommandHandler orchestrates order state transitions.
// It evaluates business rules against the order's facts, validates the
// requested action against the state graph, and commits the state change
// together with its audit record (and cancellation ticket, if any) in a
// single transaction.
//
// Rules run before the graph: a blocked transition reports the blocking
// rule's reason even when the action would also be structurally invalid.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, engine, graph)
//	cmd, _ := NewTransitionOrderCommand(orderID, "approve", "")
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrTransitionBlocked) {
//	    // surface the rule's reason to the caller
//	}
type TransitionOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
	engine     *rules.Engine
	graph      order.Graph
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
// Requires a TransitionUoWFactory for transactional persistence, the rule
// engine, and the state graph.
func NewTransitionOrderCommandHandler(
	uowFactory TransitionUoWFactory,
	engine *rules.Engine,
	graph order.Graph,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		graph:      graph,
	}
}

// Handle processes the transition command.
//
// The sequence is fixed: load the order, evaluate and execute matching
// rules, refuse if a rule blocked, validate the action against the state
// graph, require a reason for cancellations, then persist the new state,
// the audit record, and the ticket atomically. On any error after Begin the
// deferred rollback discards all partial writes, so observers never see a
// state change without its log entry.
func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	action, err := order.ParseAction(cmd.Action())
	if err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	facts := rules.Facts(aggregate.Facts())
	triggered := h.engine.Evaluate(facts, rules.EventOrderTransition, action.String())
	ruleResult := h.engine.Execute(triggered, facts, map[string]any{
		"action":              action.String(),
		"cancellation_reason": cmd.CancellationReason(),
	})

	if ruleResult.Blocked {
		return TransitionResult{}, fmt.Errorf("%w: %s", ErrTransitionBlocked, ruleResult.BlockReason)
	}

	previous := aggregate.State()
	next, err := h.graph.Validate(previous, action, aggregate.Amount())
	if err != nil {
		return TransitionResult{}, err
	}

	if action == order.Cancel && strings.TrimSpace(cmd.CancellationReason()) == "" {
		return TransitionResult{}, order.ErrCancellationReasonIsRequired
	}

	if err = aggregate.MoveTo(next); err != nil {
		return TransitionResult{}, err
	}

	if err = orderRepo.UpdateState(ctx, aggregate, previous); err != nil {
		return TransitionResult{}, err
	}

	entry, err := order.NewTransitionLog(aggregate.ID(), previous, next, action)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = uow.TransitionLogRepository().Append(ctx, entry); err != nil {
		return TransitionResult{}, err
	}

	if action == order.Cancel {
		ticket, ticketErr := order.NewTicket(aggregate.ID(), cmd.CancellationReason())
		if ticketErr != nil {
			return TransitionResult{}, ticketErr
		}

		if err = uow.TicketRepository().Add(ctx, ticket); err != nil {
			return TransitionResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		OrderID:       aggregate.ID(),
		PreviousState: previous,
		NewState:      next,
		ActionTaken:   action,
		Metadata:      ruleResult.Metadata,
		Calculations:  ruleResult.Calculations,
	}, nil
}
