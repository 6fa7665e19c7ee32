package ports

import (
	"context"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for delivery offers.
type OfferRepository interface {
	// Add persists a newly published offer.
	Add(ctx context.Context, aggregate *offer.DeliveryOffer) error

	// Get retrieves an offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.DeliveryOffer, error)

	// GetByOrder retrieves the offer published for the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*offer.DeliveryOffer, error)

	// Claim atomically transitions the offer to Claimed, conditional on it
	// still being Available ("set claimed where available" semantics).
	// Exactly one of any number of concurrent claimers succeeds; the losers
	// receive offer.ErrOfferAlreadyClaimed, and a missing offer is reported
	// with errs.ErrObjectNotFound. Returns the claimed offer on success.
	Claim(ctx context.Context, id kernel.UUID) (*offer.DeliveryOffer, error)

	// Withdraw removes an unclaimed offer from listing when its order is
	// cancelled. Withdrawing an already claimed offer is not an error; the
	// claim simply wins.
	Withdraw(ctx context.Context, orderID kernel.UUID) error
}
