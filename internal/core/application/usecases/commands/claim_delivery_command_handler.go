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

var (
	ErrOfferNotFound = errors.New("no delivery offer found")
	ErrOrderNotFound = errors.New("no order found")
)

// ClaimDeliveryCommandHandler orchestrates the offer claiming process.
// The claim itself is a conditional update in the offer repository, so when
// several couriers race on one offer only the first conditional update lands;
// every loser's transaction ends with offer.ErrOfferAlreadyClaimed and no
// partial writes. The winner's transaction also assigns the order and appends
// the pickup tracking event.
//
// Example:
//
//	handler := NewClaimDeliveryCommandHandler(uowFactory)
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, offer.ErrOfferAlreadyClaimed):
//	    log.Println("Another courier was faster")
//	case errors.Is(err, ErrOfferNotFound):
//	    log.Println("Offer does not exist")
//	case err != nil:
//	    log.Printf("Claim failed: %v", err)
//	}
type ClaimDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimDeliveryCommandHandler creates a handler for offer claiming operations.
func NewClaimDeliveryCommandHandler(uowFactory UoWFactory) ClaimDeliveryCommandHandler {
	return ClaimDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command and returns the claimed order.
// Returns ErrOfferNotFound for a missing offer, offer.ErrOfferAlreadyClaimed
// when another courier won the race, and ErrOrderNotFound when the offer
// references an order that no longer exists.
func (h ClaimDeliveryCommandHandler) Handle(ctx context.Context, cmd ClaimDeliveryCommand) (*order.Order, error) {
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

	claimedOffer, err := uow.OfferRepository().Claim(ctx, cmd.OfferID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}

	claimedOrder, err := uow.OrderRepository().Get(ctx, claimedOffer.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err = claimedOrder.Claim(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, claimedOrder); err != nil {
		return nil, err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		claimedOrder.ID(),
		"Order collected",
		fmt.Sprintf("%s, %s", claimedOffer.OriginCity(), claimedOffer.OriginState()),
		"Courier claimed the delivery offer and picked up the cargo",
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = recomputeSupplierStatistics(ctx, uow, claimedOrder.Supplier(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimedOrder, nil
}
