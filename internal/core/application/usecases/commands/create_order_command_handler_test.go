package commands_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrderRepository struct{ mock.Mock }

func (m *MockCreateOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCreateOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateOrderRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateOrderRepository) UpdateState(
	_ context.Context, _ *order.Order, _ order.State,
) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateOrderRepository) CountInState(_ context.Context, _ order.State) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type MockCreateLogRepository struct{ mock.Mock }

func (m *MockCreateLogRepository) Append(ctx context.Context, entry order.TransitionLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockCreateLogRepository) GetByOrderID(
	_ context.Context, _ kernel.UUID,
) ([]order.TransitionLog, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateLogRepository) GetAll(_ context.Context, _ int) ([]order.TransitionLog, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCreateCustomerRepository struct{ mock.Mock }

func (m *MockCreateCustomerRepository) Add(_ context.Context, _ *customer.Customer) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateCustomerRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCreateCustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCreateProductRepository struct{ mock.Mock }

func (m *MockCreateProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateProductRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockCreateProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCreateOrderUoW) TransitionLogRepository() ports.TransitionLogRepository {
	args := m.Called()
	return args.Get(0).(ports.TransitionLogRepository)
}
func (m *MockCreateOrderUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockCreateOrderUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	buyer, err := customer.NewCustomer(customerID, "Ada", "ada@example.com")
	require.NoError(t, err)

	productID := kernel.NewUUID()
	widget, err := product.NewProduct(productID, "widget", 19.99)
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, "",
		[]commands.OrderLine{{ProductID: productID, Quantity: 3}})
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	logRepo := new(MockCreateLogRepository)
	customerRepo := new(MockCreateCustomerRepository)
	productRepo := new(MockCreateProductRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(buyer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(widget, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created := args.Get(1).(*order.Order)
				assert.Equal(t, orderID, created.ID())
				assert.Equal(t, order.Pending, created.State())
				assert.InDelta(t, 59.97, created.Amount(), 1e-9)
				require.Len(t, created.Items(), 1)
				assert.Equal(t, "widget", created.Items()[0].Name())
			}).Return(nil).Once(),
		uow.On("TransitionLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.AnythingOfType("order.TransitionLog")).
			Run(func(args mock.Arguments) {
				entry := args.Get(1).(order.TransitionLog)
				assert.Nil(t, entry.PreviousState())
				assert.Equal(t, order.Pending, entry.NewState())
				assert.Equal(t, order.CreationAction, entry.ActionTaken())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, "",
		[]commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 1}})
	require.NoError(t, err)

	customerRepo := new(MockCreateCustomerRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer_id", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	buyer, err := customer.NewCustomer(customerID, "Ada", "ada@example.com")
	require.NoError(t, err)

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, "",
		[]commands.OrderLine{{ProductID: productID, Quantity: 1}})
	require.NoError(t, err)

	customerRepo := new(MockCreateCustomerRepository)
	productRepo := new(MockCreateProductRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(buyer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("product_id", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	buyer, err := customer.NewCustomer(customerID, "Ada", "ada@example.com")
	require.NoError(t, err)

	productID := kernel.NewUUID()
	widget, err := product.NewProduct(productID, "widget", 5)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, "",
		[]commands.OrderLine{{ProductID: productID, Quantity: 2}})
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	logRepo := new(MockCreateLogRepository)
	customerRepo := new(MockCreateCustomerRepository)
	productRepo := new(MockCreateProductRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(buyer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(widget, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TransitionLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.AnythingOfType("order.TransitionLog")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
