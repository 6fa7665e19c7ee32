package commands

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a supplier's request to create a new shipment
// order. It carries the already-validated recipient, address, and cargo value
// objects together with the requested service tier and pickup date; pricing
// is computed by the order aggregate when the command is handled.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	supplierID kernel.UUID
	recipient  order.Recipient
	address    kernel.Address
	cargo      order.Cargo
	tier       order.ServiceTier
	pickupDate time.Time
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Validates the identifiers and every embedded value object.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	supplierID kernel.UUID,
	recipient order.Recipient,
	address kernel.Address,
	cargo order.Cargo,
	tier order.ServiceTier,
	pickupDate time.Time,
	notes string,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		supplierID.Validate(),
		recipient.Validate(),
		address.Validate(),
		cargo.Validate(),
		tier.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:    orderID,
		supplierID: supplierID,
		recipient:  recipient,
		address:    address,
		cargo:      cargo,
		tier:       tier,
		pickupDate: pickupDate,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the acting supplier's identifier.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Recipient returns the shipment recipient.
func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

// Address returns the destination address.
func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

// Cargo returns the cargo descriptor.
func (c CreateOrderCommand) Cargo() order.Cargo {
	return c.cargo
}

// Tier returns the requested service tier.
func (c CreateOrderCommand) Tier() order.ServiceTier {
	return c.tier
}

// PickupDate returns the requested pickup date.
func (c CreateOrderCommand) PickupDate() time.Time {
	return c.pickupDate
}

// Notes returns the free-form supplier notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}
