package queries

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves all orders with line items from the database.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetOrdersQuery())
//	if err != nil {
//	    log.Printf("failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Results are sorted by creation time, then ID for consistent output; each
// order carries its line items.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			amount,
			current_state,
			notes,
			created_at
		FROM orders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			amount     float64
			state      string
			notes      string
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &customerID, &amount, &state, &notes, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		index[orderID] = len(orders)
		orders = append(orders, OrderResponse{
			ID:         orderID,
			CustomerID: ownerID,
			Amount:     amount,
			State:      state,
			Notes:      notes,
			CreatedAt:  createdAt,
			Items:      make([]OrderItemResponse, 0),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads every line item in one pass and distributes them to the
// orders collected by Handle.
func (h GetOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []OrderResponse,
	index map[kernel.UUID]int,
) error {
	if len(orders) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			quantity,
			unit_price
		FROM order_items
		ORDER BY order_id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			name      string
			quantity  int
			unitPrice float64
		)

		if err = rows.Scan(&orderID, &productID, &name, &quantity, &unitPrice); err != nil {
			return err
		}

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}

		pos, ok := index[ownerID]
		if !ok {
			continue
		}

		orders[pos].Items = append(orders[pos].Items, OrderItemResponse{
			ProductID: itemProductID,
			Name:      name,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}

	return rows.Err()
}
