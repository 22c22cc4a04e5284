package postgres_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/logrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/ticketrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that a transition's writes commit
// or roll back as one: the order state change, the audit record, and the
// cancellation ticket are never partially visible.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, transition_logs, tickets").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrder() *order.Order {
	ctx := context.Background()

	item, err := order.NewItem(kernel.NewUUID(), "widget", 1, 50)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 50, []order.Item{item}, "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsStateLogAndTicketTogether() {
	ctx := context.Background()
	aggregate := suite.seedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	previous := aggregate.State()
	suite.Require().NoError(aggregate.MoveTo(order.Cancelled))
	suite.Require().NoError(uow.OrderRepository().UpdateState(ctx, aggregate, previous))

	entry, err := order.NewTransitionLog(aggregate.ID(), previous, order.Cancelled, order.Cancel)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TransitionLogRepository().Append(ctx, entry))

	ticket, err := order.NewTicket(aggregate.ID(), "changed my mind")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TicketRepository().Add(ctx, ticket))

	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	loaded, err := reader.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, loaded.State())

	logs, err := reader.TransitionLogRepository().GetByOrderID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal(string(order.Cancel), logs[0].ActionTaken())

	stored, err := reader.TicketRepository().GetByOrderID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("changed my mind", stored.Reason())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	aggregate := suite.seedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	previous := aggregate.State()
	suite.Require().NoError(aggregate.MoveTo(order.InPreparation))
	suite.Require().NoError(uow.OrderRepository().UpdateState(ctx, aggregate, previous))

	entry, err := order.NewTransitionLog(aggregate.ID(), previous, order.InPreparation, order.StartPreparation)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TransitionLogRepository().Append(ctx, entry))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	loaded, err := reader.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loaded.State())

	logs, err := reader.TransitionLogRepository().GetByOrderID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(logs)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Rollback(context.Background()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
