package commands_test

import (
	"errors"
	"testing"
	"time"

	"mainbridge/internal/core/application/usecases/commands"
	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
	"mainbridge/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileOffersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	cmd := commands.NewReconcileOffersCommand()

	orphans := []*order.Order{
		newAwaitingOrder(kernel.NewUUID(), now),
		newAwaitingOrder(kernel.NewUUID(), now),
	}

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllAwaitingPickupWithoutOffer", ctx).Return(orphans, nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Add", ctx, mock.AnythingOfType("*offer.DeliveryOffer")).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Add", ctx, mock.AnythingOfType("*offer.DeliveryOffer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileOffersCommandHandler(factory)
	published, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, published)

	// Each republished offer belongs to its orphan and carries its payout.
	for i, call := range offerRepo.Calls {
		republished := call.Arguments[1].(*offer.DeliveryOffer)
		assert.True(t, republished.OrderID().IsEqual(orphans[i].ID()))
		assert.True(t, republished.Payout().IsEqual(orphans[i].CourierPayout()))
		assert.Equal(t, offer.Available, republished.Status())
	}

	orderRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReconcileOffersCommandHandler_Handle_NothingToReconcile(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileOffersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllAwaitingPickupWithoutOffer", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileOffersCommandHandler(factory)
	published, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, published)
}

func TestReconcileOffersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReconcileOffersCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewReconcileOffersCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReconcileOffersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReconcileOffersCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileOffersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllAwaitingPickupWithoutOffer", ctx).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileOffersCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
