package ticketrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTicketRepository implements TicketRepository using GORM.
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM ticket repository.
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// Add persists a new cancellation ticket.
func (r *GormTicketRepository) Add(ctx context.Context, ticket order.Ticket) error {
	dto := fromDomain(ticket)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a ticket by ID.
func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (order.Ticket, error) {
	if err := id.Validate(); err != nil {
		return order.Ticket{}, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Ticket{}, errs.NewObjectNotFoundError("ticket", id.String())
		}
		return order.Ticket{}, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the ticket created for the given order.
func (r *GormTicketRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (order.Ticket, error) {
	if err := orderID.Validate(); err != nil {
		return order.Ticket{}, err
	}

	var dto TicketDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Ticket{}, errs.NewObjectNotFoundError("order_id", orderID.String())
		}
		return order.Ticket{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves every ticket, newest first.
func (r *GormTicketRepository) GetAll(ctx context.Context) ([]order.Ticket, error) {
	var dtos []TicketDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tickets := make([]order.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		ticket, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}
