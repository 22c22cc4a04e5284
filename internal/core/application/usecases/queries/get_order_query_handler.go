package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its line items.
// Returns an ObjectNotFoundError when the order does not exist.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			amount,
			current_state,
			notes,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id         uuid.UUID
		customerID uuid.UUID
		amount     float64
		state      string
		notes      string
		createdAt  time.Time
	)

	if err := row.Scan(&id, &customerID, &amount, &state, &notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
		}
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	response := OrderResponse{
		ID:         orderID,
		CustomerID: ownerID,
		Amount:     amount,
		State:      state,
		Notes:      notes,
		CreatedAt:  createdAt,
		Items:      make([]OrderItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			name      string
			quantity  int
			unitPrice float64
		)

		if err = rows.Scan(&productID, &name, &quantity, &unitPrice); err != nil {
			return OrderResponse{}, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}

		response.Items = append(response.Items, OrderItemResponse{
			ProductID: itemProductID,
			Name:      name,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}
