package order_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	t.Run("should create ticket with trimmed reason", func(t *testing.T) {
		orderID := kernel.NewUUID()

		ticket, err := order.NewTicket(orderID, "  customer changed their mind  ")

		require.NoError(t, err)
		assert.NoError(t, ticket.ID().Validate())
		assert.True(t, ticket.OrderID().IsEqual(orderID))
		assert.Equal(t, "customer changed their mind", ticket.Reason())
		assert.WithinDuration(t, time.Now().UTC(), ticket.CreatedAt(), time.Minute)
	})

	t.Run("should return error for empty reason", func(t *testing.T) {
		for _, reason := range []string{"", "   ", "\t\n"} {
			_, err := order.NewTicket(kernel.NewUUID(), reason)

			assert.ErrorIs(t, err, order.ErrCancellationReasonIsRequired, "%q", reason)
		}
	})

	t.Run("should return error for invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewTicket(invalidID, "reason")

		require.Error(t, err)
	})
}

func TestRestoreTicket(t *testing.T) {
	t.Run("should restore ticket fields verbatim", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)

		ticket := order.RestoreTicket(id, orderID, "out of stock", createdAt)

		assert.True(t, ticket.ID().IsEqual(id))
		assert.True(t, ticket.OrderID().IsEqual(orderID))
		assert.Equal(t, "out of stock", ticket.Reason())
		assert.Equal(t, createdAt, ticket.CreatedAt())
	})
}
