package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the customer and every referenced product, prices the line items
// from the current catalog, and persists the order in the pending state
// together with its creation audit record.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, "", lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order total is the sum of quantity times catalog unit price over all
// lines. The order row and its creation log entry commit together, so every
// persisted order has a history starting with the "create" action.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	amount := 0.0
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		product, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		item, err := order.NewItem(product.ID(), product.Name(), line.Quantity, product.UnitPrice())
		if err != nil {
			return err
		}

		items = append(items, item)
		amount += float64(line.Quantity) * product.UnitPrice()
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), amount, items, cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := order.NewCreationLog(aggregate.ID(), aggregate.State())
	if err != nil {
		return err
	}

	if err = uow.TransitionLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
