package commands_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(_ context.Context, _ kernel.UUID) (*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCustomerUoW struct{ mock.Mock }

func (m *MockCustomerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

func TestNewCreateCustomerCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(id, "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CustomerID())
	assert.Equal(t, "Ada", cmd.Name())
	assert.Equal(t, "ada@example.com", cmd.Email())
}

func TestNewCreateCustomerCommand_MissingFields(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "", "ada@example.com")
	require.Error(t, err)

	_, err = commands.NewCreateCustomerCommand(kernel.NewUUID(), "Ada", "")
	require.Error(t, err)
}

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "Ada", "ada@example.com")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "Ada", "ada@example.com")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
