package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler retrieves all customers from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listings.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for stable output.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email
		FROM customers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)

	for rows.Next() {
		var (
			id    uuid.UUID
			name  string
			email string
		)

		if err = rows.Scan(&id, &name, &email); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customers = append(customers, CustomerResponse{
			ID:    customerID,
			Name:  name,
			Email: email,
		})
	}

	return customers, rows.Err()
}
