package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	lines := []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 3}}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, "leave at door", lines)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "leave at door", cmd.Notes())
	assert.Equal(t, lines, cmd.Lines())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", nil)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_ZeroQuantity(t *testing.T) {
	lines := []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 0}}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", lines)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidProductID(t *testing.T) {
	lines := []commands.OrderLine{{ProductID: kernel.UUID{}, Quantity: 1}}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", lines)
	require.Error(t, err)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
