package order_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphValidate(t *testing.T) {
	graph := order.NewGraph()

	t.Run("should allow every legal transition", func(t *testing.T) {
		tests := []struct {
			current order.State
			action  order.Action
			next    order.State
		}{
			{order.Pending, order.StartPreparation, order.InPreparation},
			{order.Pending, order.SubmitForReview, order.Review},
			{order.Pending, order.Cancel, order.Cancelled},
			{order.Review, order.Approve, order.InPreparation},
			{order.Review, order.Cancel, order.Cancelled},
			{order.InPreparation, order.Ship, order.Shipped},
			{order.InPreparation, order.Cancel, order.Cancelled},
			{order.Shipped, order.Deliver, order.Delivered},
		}

		for _, tt := range tests {
			next, err := graph.Validate(tt.current, tt.action, 100)

			require.NoError(t, err, "%s + %s", tt.current, tt.action)
			assert.Equal(t, tt.next, next)
		}
	})

	t.Run("should reject actions missing from the transition table", func(t *testing.T) {
		tests := []struct {
			current order.State
			action  order.Action
		}{
			{order.Pending, order.Ship},
			{order.Pending, order.Deliver},
			{order.Pending, order.Approve},
			{order.Review, order.StartPreparation},
			{order.Review, order.Ship},
			{order.InPreparation, order.Deliver},
			{order.InPreparation, order.Approve},
			{order.Shipped, order.Cancel},
			{order.Shipped, order.Ship},
		}

		for _, tt := range tests {
			_, err := graph.Validate(tt.current, tt.action, 100)

			require.Error(t, err, "%s + %s", tt.current, tt.action)
			assert.ErrorIs(t, err, order.ErrTransitionNotAllowed)
		}
	})

	t.Run("should reject every action from terminal states", func(t *testing.T) {
		actions := []order.Action{
			order.SubmitForReview, order.Approve, order.StartPreparation,
			order.Ship, order.Deliver, order.Cancel,
		}

		for _, state := range []order.State{order.Delivered, order.Cancelled} {
			for _, action := range actions {
				_, err := graph.Validate(state, action, 100)

				require.Error(t, err, "%s + %s", state, action)
				assert.ErrorIs(t, err, order.ErrTransitionNotAllowed)
			}
		}
	})

	t.Run("should route high-value orders through review", func(t *testing.T) {
		_, err := graph.Validate(order.Pending, order.StartPreparation, 1000.01)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTransitionNotAllowed)
		assert.Contains(t, err.Error(), "require review")
	})

	t.Run("should allow preparation at exactly the review threshold", func(t *testing.T) {
		next, err := graph.Validate(order.Pending, order.StartPreparation, order.ReviewThreshold)

		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, next)
	})

	t.Run("should not apply the review policy to other actions", func(t *testing.T) {
		next, err := graph.Validate(order.Pending, order.SubmitForReview, 5000)
		require.NoError(t, err)
		assert.Equal(t, order.Review, next)

		next, err = graph.Validate(order.Review, order.Approve, 5000)
		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, next)
	})

	t.Run("should reject unrecognized states and actions", func(t *testing.T) {
		var invalidErr *errs.ValueIsInvalidError

		_, err := graph.Validate(order.State("limbo"), order.Ship, 100)
		require.Error(t, err)
		assert.True(t, errors.As(err, &invalidErr))

		_, err = graph.Validate(order.Pending, order.Action("teleport"), 100)
		require.Error(t, err)
		assert.True(t, errors.As(err, &invalidErr))
	})
}

func TestGraphAllowedActions(t *testing.T) {
	graph := order.NewGraph()

	t.Run("should list actions in table order", func(t *testing.T) {
		assert.Equal(t,
			[]order.Action{order.StartPreparation, order.SubmitForReview, order.Cancel},
			graph.AllowedActions(order.Pending))
		assert.Equal(t,
			[]order.Action{order.Approve, order.Cancel},
			graph.AllowedActions(order.Review))
		assert.Equal(t,
			[]order.Action{order.Ship, order.Cancel},
			graph.AllowedActions(order.InPreparation))
		assert.Equal(t,
			[]order.Action{order.Deliver},
			graph.AllowedActions(order.Shipped))
	})

	t.Run("should return empty slice for terminal states", func(t *testing.T) {
		assert.Empty(t, graph.AllowedActions(order.Delivered))
		assert.Empty(t, graph.AllowedActions(order.Cancelled))
	})

	t.Run("should return empty slice for unrecognized states", func(t *testing.T) {
		assert.Empty(t, graph.AllowedActions(order.State("limbo")))
	})
}
