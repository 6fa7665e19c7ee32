package commands_test

import (
	"testing"
	"time"

	"mainbridge/internal/core/application/usecases/commands"
	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/tracking"
	"mainbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	supplierID := kernel.NewUUID()
	awaitingOrder := newAwaitingOrder(supplierID, now)

	cmd, err := commands.NewCancelOrderCommand(awaitingOrder.ID(), supplierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	trackingRepo := new(MockTrackingRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, awaitingOrder.ID()).Return(awaitingOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Withdraw", ctx, awaitingOrder.ID()).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("CountOrdersBySupplier", ctx, supplierID).Return(1, 0, 0, nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("UpsertSupplier", ctx, mock.AnythingOfType("stats.SupplierStatistics")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, cancelled)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.Nil(t, cancelled.Courier())

	cancelEvent := trackingRepo.Calls[0].Arguments[1].(*tracking.Event)
	assert.Equal(t, "Cancelled", cancelEvent.Status())

	orderRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	awaitingOrder := newAwaitingOrder(kernel.NewUUID(), now)
	otherSupplier := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(awaitingOrder.ID(), otherSupplier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, awaitingOrder.ID()).Return(awaitingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotOrderOwner)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	supplierID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	deliveredOrder := newClaimedOrder(supplierID, courierID, now)
	require.NoError(t, deliveredOrder.Complete(courierID, now))

	cmd, err := commands.NewCancelOrderCommand(deliveredOrder.ID(), supplierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, deliveredOrder.ID()).Return(deliveredOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}
