package commands

import (
	"errors"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrUpdateTransitStatusCommandIsNotConstructed = errors.New(
		"UpdateTransitStatusCommand must be created via NewUpdateTransitStatusCommand constructor",
	)
)

// UpdateTransitStatusCommand represents a transit progress report for an
// order on its way: Collected -> InTransit -> OutForDelivery. These updates
// come from the courier (or the tracking integration acting on their behalf),
// so the acting courier must be the assignee.
type UpdateTransitStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	next      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateTransitStatusCommand creates a command to advance an order's
// transit status. The target status must itself be a valid status value;
// whether the transition is allowed is decided by the order state machine.
func NewUpdateTransitStatusCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	next order.Status,
) (UpdateTransitStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
		next.Validate(),
	); err != nil {
		return UpdateTransitStatusCommand{}, err
	}

	return UpdateTransitStatusCommand{
		orderID:   orderID,
		courierID: courierID,
		next:      next,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTransitStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTransitStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateTransitStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the reporting courier's identifier.
func (c UpdateTransitStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Next returns the target transit status.
func (c UpdateTransitStatusCommand) Next() order.Status {
	return c.next
}
