package queries_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/logrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/ticketrepo"
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

// noopTracker satisfies the repositories' aggregate tracking dependency.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// TransitionLogQueryHandlerTestSuite exercises the per-order and global
// transition log read paths against a real database.
type TransitionLogQueryHandlerTestSuite struct {
	suite.Suite
	container      *pgcontainer.PostgresContainer
	db             *gorm.DB
	orderRepo      *orderrepo.GormOrderRepository
	logRepo        *logrepo.GormTransitionLogRepository
	orderLogsQuery queries.GetOrderLogsQueryHandler
	allLogsQuery   queries.GetAllLogsQueryHandler
}

func (suite *TransitionLogQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&logrepo.TransitionLogDTO{},
		&ticketrepo.TicketDTO{},
	))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.logRepo = logrepo.NewGormTransitionLogRepository(db)
	suite.orderLogsQuery = queries.NewGetOrderLogsQueryHandler(db)
	suite.allLogsQuery = queries.NewGetAllLogsQueryHandler(db)
}

func (suite *TransitionLogQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, transition_logs, tickets").Error)
}

func (suite *TransitionLogQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedHistory creates an order with a creation entry plus one transition.
func (suite *TransitionLogQueryHandlerTestSuite) seedHistory() *order.Order {
	ctx := context.Background()

	item, err := order.NewItem(kernel.NewUUID(), "widget", 1, 50)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 50, []order.Item{item}, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	creation, err := order.NewCreationLog(aggregate.ID(), order.Pending)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepo.Append(ctx, creation))

	transition, err := order.NewTransitionLog(
		aggregate.ID(), order.Pending, order.InPreparation, order.StartPreparation)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepo.Append(ctx, transition))

	return aggregate
}

func (suite *TransitionLogQueryHandlerTestSuite) TestHandle_ReturnsHistoryOldestFirst() {
	aggregate := suite.seedHistory()

	query, err := queries.NewGetOrderLogsQuery(aggregate.ID())
	suite.Require().NoError(err)

	logs, err := suite.orderLogsQuery.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)

	suite.Nil(logs[0].PreviousState)
	suite.Equal(order.CreationAction, logs[0].ActionTaken)
	suite.Equal("pending", logs[0].NewState)

	suite.Require().NotNil(logs[1].PreviousState)
	suite.Equal("pending", *logs[1].PreviousState)
	suite.Equal("in_preparation", logs[1].NewState)
	suite.Equal("start_preparation", logs[1].ActionTaken)
}

func (suite *TransitionLogQueryHandlerTestSuite) TestHandle_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderLogsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.orderLogsQuery.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TransitionLogQueryHandlerTestSuite) TestHandle_OrderWithoutTransitions_ReturnsEmpty() {
	ctx := context.Background()

	item, err := order.NewItem(kernel.NewUUID(), "widget", 1, 50)
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 50, []order.Item{item}, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderLogsQuery(aggregate.ID())
	suite.Require().NoError(err)

	logs, err := suite.orderLogsQuery.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(logs)
}

func (suite *TransitionLogQueryHandlerTestSuite) TestHandle_GlobalFeed_NewestFirstWithLimit() {
	first := suite.seedHistory()
	second := suite.seedHistory()
	_ = first
	_ = second

	logs, err := suite.allLogsQuery.Handle(context.Background(), queries.NewGetAllLogsQuery(0))
	suite.Require().NoError(err)
	suite.Require().Len(logs, 4)

	for i := range len(logs) - 1 {
		suite.False(logs[i].OccurredAt.Before(logs[i+1].OccurredAt),
			"global feed must be ordered newest first")
	}

	limited, err := suite.allLogsQuery.Handle(context.Background(), queries.NewGetAllLogsQuery(3))
	suite.Require().NoError(err)
	suite.Len(limited, 3)
}

func TestTransitionLogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionLogQueryHandlerTestSuite))
}
