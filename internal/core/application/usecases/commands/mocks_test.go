package commands_test

import (
	"context"
	"time"

	"mainbridge/internal/core/application/usecases/commands"
	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/stats"
	"mainbridge/internal/core/domain/model/tracking"
	"mainbridge/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllBySupplier(ctx context.Context, supplierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingPickupWithoutOffer(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.DeliveryOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.DeliveryOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.DeliveryOffer), args.Error(1)
}

func (m *MockOfferRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*offer.DeliveryOffer, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.DeliveryOffer), args.Error(1)
}

func (m *MockOfferRepository) Claim(ctx context.Context, id kernel.UUID) (*offer.DeliveryOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.DeliveryOffer), args.Error(1)
}

func (m *MockOfferRepository) Withdraw(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockEarningsRepository struct{ mock.Mock }

func (m *MockEarningsRepository) Add(ctx context.Context, r *earnings.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockEarningsRepository) GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*earnings.Record, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*earnings.Record), args.Error(1)
}

func (m *MockEarningsRepository) SumPendingSince(
	ctx context.Context,
	courierID kernel.UUID,
	since time.Time,
) (kernel.Money, error) {
	args := m.Called(ctx, courierID, since)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockEarningsRepository) CountByCourier(ctx context.Context, courierID kernel.UUID) (int, error) {
	args := m.Called(ctx, courierID)
	return args.Int(0), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, e *tracking.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Event, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Event), args.Error(1)
}

type MockStatsRepository struct{ mock.Mock }

func (m *MockStatsRepository) UpsertCourier(ctx context.Context, s stats.CourierStatistics) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStatsRepository) UpsertSupplier(ctx context.Context, s stats.SupplierStatistics) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStatsRepository) CountOrdersBySupplier(
	ctx context.Context,
	supplierID kernel.UUID,
) (int, int, int, error) {
	args := m.Called(ctx, supplierID)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

func (m *MockStatsRepository) GetCourierIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockStatsRepository) GetSupplierIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockUoW) EarningsRepository() ports.EarningsRepository {
	args := m.Called()
	return args.Get(0).(ports.EarningsRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) StatsRepository() ports.StatsRepository {
	args := m.Called()
	return args.Get(0).(ports.StatsRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Shared fixtures for the handler tests.

func testRecipient() order.Recipient {
	r, _ := order.NewRecipient("Maria Silva", "123.456.789-00", "+55 41 99999-0000", "maria@example.com")
	return r
}

func testAddress() kernel.Address {
	a, _ := kernel.NewAddress("Rua XV de Novembro", "1500", "", "Centro", "Curitiba", "PR", "80020-310")
	return a
}

func testCargo() order.Cargo {
	declared, _ := kernel.NewMoneyFromFloat(500)
	c, _ := order.NewCargo("Auto parts", decimal.NewFromInt(10),
		decimal.NewFromInt(40), decimal.NewFromInt(30), decimal.NewFromInt(20), declared)
	return c
}

// newAwaitingOrder builds an order in AwaitingPickup status.
func newAwaitingOrder(supplierID kernel.UUID, now time.Time) *order.Order {
	o, _ := order.NewOrder(
		kernel.NewUUID(),
		supplierID,
		testRecipient(),
		testAddress(),
		testCargo(),
		order.TierNormal,
		now.AddDate(0, 0, 1),
		"",
		now,
	)
	return o
}

// newClaimedOrder builds an order already claimed by the given courier.
func newClaimedOrder(supplierID, courierID kernel.UUID, now time.Time) *order.Order {
	o := newAwaitingOrder(supplierID, now)
	_ = o.Claim(courierID)
	return o
}

// newAvailableOffer builds an Available offer for the given order.
func newAvailableOffer(o *order.Order, now time.Time) *offer.DeliveryOffer {
	d, _ := offer.NewDeliveryOffer(
		kernel.NewUUID(),
		o.ID(),
		o.Address().City(), o.Address().State(),
		o.Address().City(), o.Address().State(),
		decimal.Zero,
		o.CourierPayout(),
		o.PickupDate(),
		o.ExpectedDelivery(),
		now,
	)
	return d
}

func mustMoney(amount float64) kernel.Money {
	m, _ := kernel.NewMoneyFromFloat(amount)
	return m
}
