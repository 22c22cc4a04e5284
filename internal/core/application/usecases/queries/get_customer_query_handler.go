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

// GetCustomerQueryHandler retrieves a single customer.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single customer lookups.
// Requires a GORM database connection for query execution.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError if no customer has the requested id.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email
		FROM customers
		WHERE id = ?
	`, query.CustomerID().String()).Row()

	var (
		id    uuid.UUID
		name  string
		email string
	)

	if err := row.Scan(&id, &name, &email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, errs.NewObjectNotFoundError("customer_id", query.CustomerID())
		}
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}

	return CustomerResponse{
		ID:    customerID,
		Name:  name,
		Email: email,
	}, nil
}
