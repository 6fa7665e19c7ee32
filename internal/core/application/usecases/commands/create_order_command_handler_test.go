package commands_test

import (
	"errors"
	"testing"
	"time"

	"mainbridge/internal/core/application/usecases/commands"
	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, supplierID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		supplierID,
		testRecipient(),
		testAddress(),
		testCargo(),
		order.TierNormal,
		time.Now().AddDate(0, 0, 1),
		"",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, supplierID)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	trackingRepo := new(MockTrackingRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Add", ctx, mock.AnythingOfType("*offer.DeliveryOffer")).Return(nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("CountOrdersBySupplier", ctx, supplierID).Return(1, 1, 0, nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("UpsertSupplier", ctx, mock.AnythingOfType("stats.SupplierStatistics")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)

	// Normal tier, 10 kg: max(30, 10*10) = 100.00, courier share 70.00.
	assert.Equal(t, "100.00", created.Freight().String())
	assert.Equal(t, "70.00", created.CourierPayout().String())
	assert.Equal(t, order.AwaitingPickup, created.Status())
	assert.Contains(t, created.Number(), "MB-")

	publishedOffer := offerRepo.Calls[0].Arguments[1].(*offer.DeliveryOffer)
	assert.True(t, publishedOffer.OrderID().IsEqual(created.ID()))
	assert.Equal(t, "70.00", publishedOffer.Payout().String())
	assert.Equal(t, offer.Available, publishedOffer.Status())

	firstEvent := trackingRepo.Calls[0].Arguments[1].(*tracking.Event)
	assert.Equal(t, "Order created", firstEvent.Status())
	assert.Equal(t, "Curitiba, PR", firstEvent.Location())

	orderRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	assert.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_PickupDateInPast(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testRecipient(),
		testAddress(),
		testCargo(),
		order.TierNormal,
		time.Now().AddDate(0, 0, -2),
		"",
	)
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrPickupDateInPast)
	assert.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, kernel.NewUUID())

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_AddOrderError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, supplierID)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	trackingRepo := new(MockTrackingRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Add", ctx, mock.AnythingOfType("*offer.DeliveryOffer")).Return(nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("CountOrdersBySupplier", ctx, supplierID).Return(1, 1, 0, nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("UpsertSupplier", ctx, mock.AnythingOfType("stats.SupplierStatistics")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
