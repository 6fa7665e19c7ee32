package commands

import (
	"errors"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrClaimDeliveryCommandIsNotConstructed = errors.New(
		"ClaimDeliveryCommand must be created via NewClaimDeliveryCommand constructor",
	)
)

// ClaimDeliveryCommand represents a courier's attempt to claim a published
// delivery offer. Any number of couriers may race on the same offer; exactly
// one claim succeeds.
type ClaimDeliveryCommand struct { //nolint:recvcheck //using for validation
	offerID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimDeliveryCommand creates a command to claim a delivery offer.
func NewClaimDeliveryCommand(offerID, courierID kernel.UUID) (ClaimDeliveryCommand, error) {
	if err := errors.Join(
		offerID.Validate(),
		courierID.Validate(),
	); err != nil {
		return ClaimDeliveryCommand{}, err
	}

	return ClaimDeliveryCommand{
		offerID:   offerID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrClaimDeliveryCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer being claimed.
func (c ClaimDeliveryCommand) OfferID() kernel.UUID {
	return c.offerID
}

// CourierID returns the claiming courier's identifier.
func (c ClaimDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}
