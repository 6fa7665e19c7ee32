package commands

import (
	"context"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"

	"github.com/shopspring/decimal"
)

// ReconcileOffersCommandHandler repairs the order-without-offer inconsistency.
// Order creation writes both rows in one transaction, so under normal
// operation this handler finds nothing; it exists as the backstop for rows
// imported from elsewhere or left behind by manual intervention. Every
// missing offer is republished with the same payout and deadline the order
// was created with.
type ReconcileOffersCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileOffersCommandHandler creates a handler for offer reconciliation.
func NewReconcileOffersCommandHandler(uowFactory UoWFactory) ReconcileOffersCommandHandler {
	return ReconcileOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle republishes offers for all awaiting-pickup orders lacking one and
// returns the number of offers published.
func (h ReconcileOffersCommandHandler) Handle(ctx context.Context, cmd ReconcileOffersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllAwaitingPickupWithoutOffer(ctx)
	if err != nil {
		return 0, err
	}

	for _, o := range orders {
		newOffer, err := offer.NewDeliveryOffer(
			kernel.NewUUID(),
			o.ID(),
			o.Address().City(), o.Address().State(),
			o.Address().City(), o.Address().State(),
			decimal.Zero,
			o.CourierPayout(),
			o.PickupDate(),
			o.ExpectedDelivery(),
			now,
		)
		if err != nil {
			return 0, err
		}
		if err = uow.OfferRepository().Add(ctx, newOffer); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
