package queries_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AllowedActionsQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	handler   queries.GetAllowedActionsQueryHandler
}

func (suite *AllowedActionsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.handler = queries.NewGetAllowedActionsQueryHandler(db, order.NewGraph())
}

func (suite *AllowedActionsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *AllowedActionsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AllowedActionsQueryHandlerTestSuite) seedOrderInState(state order.State) *order.Order {
	ctx := context.Background()

	item, err := order.NewItem(kernel.NewUUID(), "widget", 1, 50)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 50, []order.Item{item}, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	if state != order.Pending {
		suite.Require().NoError(aggregate.MoveTo(state))
		suite.Require().NoError(suite.orderRepo.UpdateState(ctx, aggregate, order.Pending))
	}

	return aggregate
}

func (suite *AllowedActionsQueryHandlerTestSuite) TestHandle_PendingOrder_ListsThreeActions() {
	aggregate := suite.seedOrderInState(order.Pending)

	query, err := queries.NewGetAllowedActionsQuery(aggregate.ID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("pending", response.CurrentState)
	suite.ElementsMatch(
		[]string{"start_preparation", "submit_for_review", "cancel"},
		response.AllowedActions,
	)
}

func (suite *AllowedActionsQueryHandlerTestSuite) TestHandle_TerminalState_ReturnsEmptyList() {
	aggregate := suite.seedOrderInState(order.Cancelled)

	query, err := queries.NewGetAllowedActionsQuery(aggregate.ID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("cancelled", response.CurrentState)
	suite.Empty(response.AllowedActions)
}

func (suite *AllowedActionsQueryHandlerTestSuite) TestHandle_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetAllowedActionsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestAllowedActionsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AllowedActionsQueryHandlerTestSuite))
}
