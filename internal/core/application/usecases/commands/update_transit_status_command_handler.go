package commands

import (
	"context"
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/tracking"
	"mainbridge/internal/pkg/errs"
)

// UpdateTransitStatusCommandHandler applies a transit progress report to an
// order and appends the matching tracking event in one transaction.
type UpdateTransitStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateTransitStatusCommandHandler creates a handler for transit status
// updates.
func NewUpdateTransitStatusCommandHandler(uowFactory UoWFactory) UpdateTransitStatusCommandHandler {
	return UpdateTransitStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit update command and returns the updated order.
// Returns ErrOrderNotFound for a missing order, order.ErrCourierNotAssigned
// when the caller is not the assignee, and a validation error for a
// transition the state machine does not allow.
func (h UpdateTransitStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTransitStatusCommand,
) (*order.Order, error) {
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

	transitOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err = transitOrder.AdvanceTransit(cmd.CourierID(), cmd.Next()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, transitOrder); err != nil {
		return nil, err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		transitOrder.ID(),
		transitStatusLine(cmd.Next()),
		"En route",
		"Transit update reported by the courier",
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return transitOrder, nil
}

// transitStatusLine maps a transit status to the human-readable tracking line.
func transitStatusLine(s order.Status) string {
	switch s {
	case order.InTransit:
		return "In transit"
	case order.OutForDelivery:
		return "Out for delivery"
	default:
		return s.String()
	}
}
