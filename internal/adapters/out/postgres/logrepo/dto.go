// Package logrepo persists transition audit records. Log rows are append
// only: nothing in the system updates or deletes them except a cascading
// order delete.
package logrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TransitionLogDTO represents one persisted transition audit record.
// PreviousState is NULL for the creation entry.
type TransitionLogDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	PreviousState *string
	NewState      string
	ActionTaken   string
	OccurredAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for transition records.
func (TransitionLogDTO) TableName() string {
	return "transition_logs"
}

// fromDomain converts a transition log record to its database representation.
func fromDomain(entry order.TransitionLog) TransitionLogDTO {
	var previous *string
	if state := entry.PreviousState(); state != nil {
		value := state.String()
		previous = &value
	}

	return TransitionLogDTO{
		ID:            entry.ID().Bytes(),
		OrderID:       entry.OrderID().Bytes(),
		PreviousState: previous,
		NewState:      entry.NewState().String(),
		ActionTaken:   entry.ActionTaken(),
		OccurredAt:    entry.OccurredAt(),
	}
}

// toDomain converts a database DTO back to a transition log record.
func toDomain(dto TransitionLogDTO) (order.TransitionLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.TransitionLog{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.TransitionLog{}, err
	}

	var previous *order.State
	if dto.PreviousState != nil {
		state, stateErr := order.ParseState(*dto.PreviousState)
		if stateErr != nil {
			return order.TransitionLog{}, stateErr
		}
		previous = &state
	}

	newState, err := order.ParseState(dto.NewState)
	if err != nil {
		return order.TransitionLog{}, err
	}

	return order.RestoreTransitionLog(id, orderID, previous, newState, dto.ActionTaken, dto.OccurredAt), nil
}
