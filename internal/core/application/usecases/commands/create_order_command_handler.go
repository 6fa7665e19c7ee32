package commands

import (
	"context"
	"fmt"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/tracking"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the order from the service-tier tariff, persists it in
// AwaitingPickup status, appends the initial tracking event, and publishes
// the delivery offer for couriers, all within one transaction so a
// mid-sequence failure can never leave an order without its offer.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order,
// which carries the computed freight, total, number, and expected delivery date.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.SupplierID(),
		cmd.Recipient(),
		cmd.Address(),
		cmd.Cargo(),
		cmd.Tier(),
		cmd.PickupDate(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		newOrder.ID(),
		"Order created",
		fmt.Sprintf("%s, %s", cmd.Address().City(), cmd.Address().State()),
		"Order registered in the system",
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	// The creation flow has no distance input, so origin mirrors the
	// destination and the distance estimate is zero.
	newOffer, err := offer.NewDeliveryOffer(
		kernel.NewUUID(),
		newOrder.ID(),
		cmd.Address().City(), cmd.Address().State(),
		cmd.Address().City(), cmd.Address().State(),
		decimal.Zero,
		newOrder.CourierPayout(),
		newOrder.PickupDate(),
		newOrder.ExpectedDelivery(),
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.OfferRepository().Add(ctx, newOffer); err != nil {
		return nil, err
	}

	if err = recomputeSupplierStatistics(ctx, uow, newOrder.Supplier(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
