package logrepo

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormTransitionLogRepository implements TransitionLogRepository using GORM.
type GormTransitionLogRepository struct {
	db *gorm.DB
}

// NewGormTransitionLogRepository creates a new GORM transition log repository.
func NewGormTransitionLogRepository(db *gorm.DB) *GormTransitionLogRepository {
	return &GormTransitionLogRepository{db: db}
}

// Append persists one audit record.
func (r *GormTransitionLogRepository) Append(ctx context.Context, entry order.TransitionLog) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrderID returns the order's history ordered by transition time ascending.
func (r *GormTransitionLogRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.TransitionLog, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionLogDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll returns the most recent entries across all orders, newest first,
// bounded by limit.
func (r *GormTransitionLogRepository) GetAll(
	ctx context.Context,
	limit int,
) ([]order.TransitionLog, error) {
	var dtos []TransitionLogDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []TransitionLogDTO) ([]order.TransitionLog, error) {
	logs := make([]order.TransitionLog, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, nil
}
