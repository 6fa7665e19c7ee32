package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/tracking"
	"mainbridge/internal/pkg/errs"
)

// ErrNotOrderOwner is returned when a supplier tries to cancel an order that
// belongs to another supplier.
var ErrNotOrderOwner = errors.New("order belongs to another supplier")

// CancelOrderCommandHandler orchestrates the order cancellation process.
// Moves the order to Cancelled, withdraws its still-unclaimed offer from
// listing, and appends the tracking event in one transaction, so no courier
// can claim an offer whose order was cancelled. Withdrawing never touches a
// claimed offer; a concurrent claim that commits first moves the order out of
// AwaitingPickup and this cancellation still wins from Collected.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation
// operations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command and returns the cancelled order.
// Returns ErrOrderNotFound for a missing order, ErrNotOrderOwner when the
// acting supplier does not own it, and a validation error when the order is
// already in a terminal status.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cancelledOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if !cancelledOrder.Supplier().IsEqual(cmd.SupplierID()) {
		return nil, ErrNotOrderOwner
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, cancelledOrder); err != nil {
		return nil, err
	}

	if err = uow.OfferRepository().Withdraw(ctx, cancelledOrder.ID()); err != nil {
		return nil, err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		cancelledOrder.ID(),
		"Cancelled",
		fmt.Sprintf("%s, %s", cancelledOrder.Address().City(), cancelledOrder.Address().State()),
		"Order cancelled by the supplier",
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = recomputeSupplierStatistics(ctx, uow, cancelledOrder.Supplier(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cancelledOrder, nil
}
