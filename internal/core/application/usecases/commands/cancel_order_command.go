package commands

import (
	"errors"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a supplier's request to cancel one of their
// own orders before it reaches a terminal status.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, supplierID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		supplierID.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:    orderID,
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the acting supplier's identifier.
func (c CancelOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}
