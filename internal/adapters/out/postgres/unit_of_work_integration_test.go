package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "mainbridge/internal/adapters/out/postgres"
	"mainbridge/internal/adapters/out/postgres/earningsrepo"
	"mainbridge/internal/adapters/out/postgres/offerrepo"
	"mainbridge/internal/adapters/out/postgres/orderrepo"
	"mainbridge/internal/adapters/out/postgres/statsrepo"
	"mainbridge/internal/adapters/out/postgres/trackingrepo"
	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/stats"
	"mainbridge/internal/core/domain/model/tracking"
	"mainbridge/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database,
// covering the multi-table write sequences of the order lifecycle.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&offerrepo.OfferDTO{},
		&earningsrepo.EarningsDTO{},
		&trackingrepo.TrackingEventDTO{},
		&statsrepo.CourierStatisticsDTO{},
		&statsrepo.SupplierStatisticsDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, delivery_offers, earnings_records, tracking_events, courier_statistics, supplier_statistics",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work
// instances with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.OfferRepository())
	suite.NotNil(uow1.EarningsRepository())
	suite.NotNil(uow1.TrackingRepository())
	suite.NotNil(uow1.StatsRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderPublicationTransaction verifies the creation sequence
// (order + tracking event + offer) commits as one unit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPublicationTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.Require().NoError)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	event, err := createTestEvent(testOrder)
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Add(ctx, event)
	suite.Require().NoError(err)

	testOffer, err := createTestOfferFor(testOrder)
	suite.Require().NoError(err)
	err = uow.OfferRepository().Add(ctx, testOffer)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// All three rows must be visible to a fresh unit of work.
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AwaitingPickup, retrievedOrder.Status())

	retrievedOffer, err := newUow.OfferRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(offer.Available, retrievedOffer.Status())

	events, err := newUow.TrackingRepository().GetAllByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(events, 1)
	suite.Equal("Order created", events[0].Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.Require().NoError)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	testOffer, err := createTestOfferFor(testOrder)
	suite.Require().NoError(err)
	err = uow.OfferRepository().Add(ctx, testOffer)
	suite.Require().NoError(err)

	// Entities are visible within the transaction.
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.OfferRepository().Get(ctx, testOffer.ID())
	suite.Require().Error(err, "Offer should not exist after rollback")
}

// TestUnitOfWork_DeliveryConfirmationWorkflow runs the full lifecycle in
// transactions: publication, claim, confirmation with earnings accrual and
// statistics recomputation.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryConfirmationWorkflow() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	// Publication.
	testOrder := createTestOrder(suite.Require().NoError)
	testOffer, err := createTestOfferFor(testOrder)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OfferRepository().Add(ctx, testOffer))
	suite.Require().NoError(uow.Commit(ctx))

	// Claim.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	claimedOffer, err := uow.OfferRepository().Claim(ctx, testOffer.ID())
	suite.Require().NoError(err)
	suite.Equal(offer.Claimed, claimedOffer.Status())

	suite.Require().NoError(testOrder.Claim(courierID))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// Confirmation with earnings and statistics.
	now := time.Now()
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testOrder.Complete(courierID, now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))

	record, err := earnings.NewRecord(kernel.NewUUID(), courierID, testOrder.ID(), testOrder.CourierPayout(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EarningsRepository().Add(ctx, record))

	total, err := uow.EarningsRepository().SumPendingSince(ctx, courierID, time.Time{})
	suite.Require().NoError(err)
	deliveries, err := uow.EarningsRepository().CountByCourier(ctx, courierID)
	suite.Require().NoError(err)

	err = uow.StatsRepository().UpsertCourier(ctx, stats.CourierStatistics{
		CourierID:       courierID,
		DeliveriesTotal: deliveries,
		EarningsToday:   total,
		EarningsWeek:    total,
		EarningsTotal:   total,
		UpdatedAt:       now,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	// Verify the final state from a fresh unit of work.
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())
	suite.NotNil(retrievedOrder.DeliveredAt())

	// Payout is 70% of the 100.00 freight for 10 kg at the normal tier.
	suite.Equal("70.00", total.String())
	suite.Equal(1, deliveries)
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.Require().NoError)

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(suite.Require().NoError)
	order2 := createTestOrder(suite.Require().NoError)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	// Each transaction only sees its own changes.
	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// createTestOrder creates a valid awaiting-pickup order for testing purposes.
func createTestOrder(requireNoError func(error, ...interface{})) *order.Order {
	recipient, err := order.NewRecipient("Maria Silva", "123.456.789-00", "+55 41 99999-0000", "maria@example.com")
	requireNoError(err)

	address, err := kernel.NewAddress("Rua XV de Novembro", "1500", "", "Centro", "Curitiba", "PR", "80020-310")
	requireNoError(err)

	declaredValue, err := kernel.NewMoneyFromFloat(500)
	requireNoError(err)

	cargo, err := order.NewCargo(
		"Auto parts",
		decimal.NewFromInt(10),
		decimal.NewFromInt(40),
		decimal.NewFromInt(30),
		decimal.NewFromInt(20),
		declaredValue,
	)
	requireNoError(err)

	now := time.Now()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		recipient,
		address,
		cargo,
		order.TierNormal,
		now.AddDate(0, 0, 1),
		"",
		now,
	)
	requireNoError(err)
	return testOrder
}

// createTestOfferFor publishes an available offer mirroring the order.
func createTestOfferFor(o *order.Order) (*offer.DeliveryOffer, error) {
	return offer.NewDeliveryOffer(
		kernel.NewUUID(),
		o.ID(),
		o.Address().City(), o.Address().State(),
		o.Address().City(), o.Address().State(),
		decimal.Zero,
		o.CourierPayout(),
		o.PickupDate(),
		o.ExpectedDelivery(),
		time.Now(),
	)
}

// createTestEvent creates the publication tracking event for the order.
func createTestEvent(o *order.Order) (*tracking.Event, error) {
	return tracking.NewEvent(
		kernel.NewUUID(),
		o.ID(),
		"Order created",
		o.Address().City()+", "+o.Address().State(),
		"Order registered and offer published",
		time.Now(),
	)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
