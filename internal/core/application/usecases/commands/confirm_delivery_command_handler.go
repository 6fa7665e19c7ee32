package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/tracking"
	"mainbridge/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler orchestrates the delivery confirmation process.
// Moves the order to Delivered, accrues the courier's pending earnings record,
// appends the final tracking event, and recomputes both the courier's and the
// supplier's materialized statistics, all in one transaction. A duplicate
// confirmation fails on the order status transition before any earnings write,
// so the payout can never be accrued twice.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation
// operations.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command and returns the delivered order.
// Returns ErrOrderNotFound for a missing order and order.ErrCourierNotAssigned
// when the caller is not the assigned courier.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Order, error) {
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

	deliveredOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err = deliveredOrder.Complete(cmd.CourierID(), now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, deliveredOrder); err != nil {
		return nil, err
	}

	record, err := earnings.NewRecord(
		kernel.NewUUID(),
		cmd.CourierID(),
		deliveredOrder.ID(),
		deliveredOrder.CourierPayout(),
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.EarningsRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		deliveredOrder.ID(),
		"Delivered",
		fmt.Sprintf("%s, %s", deliveredOrder.Address().City(), deliveredOrder.Address().State()),
		"Delivery confirmed by the courier",
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = recomputeCourierStatistics(ctx, uow, cmd.CourierID(), now); err != nil {
		return nil, err
	}
	if err = recomputeSupplierStatistics(ctx, uow, deliveredOrder.Supplier(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return deliveredOrder, nil
}
