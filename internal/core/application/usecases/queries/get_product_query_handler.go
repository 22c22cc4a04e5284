package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single catalog product.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product lookups.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError if no product has the requested id.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, unit_price
		FROM products
		WHERE id = ?
	`, query.ProductID().String()).Row()

	var (
		id        uuid.UUID
		name      string
		unitPrice float64
	)

	if err := row.Scan(&id, &name, &unitPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError("product_id", query.ProductID())
		}
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}

	return ProductResponse{
		ID:        productID,
		Name:      name,
		UnitPrice: unitPrice,
	}, nil
}
