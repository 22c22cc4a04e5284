package order_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	t.Run("should accept every known state", func(t *testing.T) {
		for _, raw := range []string{
			"pending", "review", "in_preparation", "shipped", "delivered", "cancelled",
		} {
			state, err := order.ParseState(raw)

			require.NoError(t, err, raw)
			assert.Equal(t, raw, state.String())
		}
	})

	t.Run("should reject unknown input", func(t *testing.T) {
		var invalidErr *errs.ValueIsInvalidError

		for _, raw := range []string{"", "Pending", "done", "in-preparation"} {
			_, err := order.ParseState(raw)

			require.Error(t, err, raw)
			assert.True(t, errors.As(err, &invalidErr))
		}
	})
}

func TestParseAction(t *testing.T) {
	t.Run("should accept every known action", func(t *testing.T) {
		for _, raw := range []string{
			"submit_for_review", "approve", "start_preparation", "ship", "deliver", "cancel",
		} {
			action, err := order.ParseAction(raw)

			require.NoError(t, err, raw)
			assert.Equal(t, raw, action.String())
		}
	})

	t.Run("should reject unknown input", func(t *testing.T) {
		var invalidErr *errs.ValueIsInvalidError

		for _, raw := range []string{"", "SHIP", "create", "prepare"} {
			_, err := order.ParseAction(raw)

			require.Error(t, err, raw)
			assert.True(t, errors.As(err, &invalidErr))
		}
	})
}

func TestStateIsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Review.IsTerminal())
	assert.False(t, order.InPreparation.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}
