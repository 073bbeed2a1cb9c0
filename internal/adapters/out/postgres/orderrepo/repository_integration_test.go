package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	id := kernel.NewUUID()
	o, err := order.NewOrder(
		id,
		order.Number(time.Now(), id),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now().Add(2*time.Hour).Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	o := suite.newOrder()
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	err := suite.repository.Add(context.Background(), o)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
	suite.Equal(o.OrderNumber(), restored.OrderNumber())
	suite.Equal(order.WaitingForPickup, restored.Status())
	suite.Nil(restored.Driver())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusTransition() {
	o := suite.newOrder()
	suite.tracker.On("TrackAggregate", o.ID(), o).Twice()

	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	driverID := kernel.NewUUID()
	suite.Require().NoError(o.AssignPickupDriver(driverID))
	suite.Require().NoError(suite.repository.Update(context.Background(), o))

	restored, err := suite.repository.Get(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.LaundryOnTheWay, restored.Status())
	suite.Require().NotNil(restored.Driver())
	suite.True(restored.Driver().IsEqual(driverID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReplaceItemsAndGetItems() {
	o := suite.newOrder()
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	items, err := order.NewItems(map[kernel.UUID]int{
		kernel.NewUUID(): 3,
		kernel.NewUUID(): 1,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.ReplaceItems(context.Background(), o.ID(), items))

	restored, err := suite.repository.GetItems(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Len(restored, 2)

	// Replacing again overwrites the manifest.
	replacement, err := order.NewItems(map[kernel.UUID]int{kernel.NewUUID(): 5})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceItems(context.Background(), o.ID(), replacement))

	restored, err = suite.repository.GetItems(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Len(restored, 1)
	suite.Equal(5, restored[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetUnpaidSince_FiltersByStatusAndAge() {
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	unpaid := suite.newOrder()
	suite.marchToWaitingForPayment(unpaid)
	suite.Require().NoError(suite.repository.Add(context.Background(), unpaid))

	fresh := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(context.Background(), fresh))

	// Age the unpaid order's row past the cutoff.
	err := suite.db.Exec("UPDATE orders SET updated_at = ? WHERE id = ?",
		time.Now().Add(-48*time.Hour), unpaid.ID().Bytes()).Error
	suite.Require().NoError(err)

	result, err := suite.repository.GetUnpaidSince(context.Background(), time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(unpaid.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) marchToWaitingForPayment(o *order.Order) {
	suite.Require().NoError(o.AssignPickupDriver(kernel.NewUUID()))
	suite.Require().NoError(o.ArriveAtOutlet())
	suite.Require().NoError(o.AssignWashing(50000, 3.5))
	suite.Require().NoError(o.AttachInvoice("https://pay.example/inv/1"))
	suite.Require().NoError(o.CompleteStation(order.StationWashing, false))
	suite.Require().NoError(o.CompleteStation(order.StationIroning, false))
	suite.Require().NoError(o.CompleteStation(order.StationPacking, false))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
