// Package offer contains the DeliveryOffer aggregate: the publicly claimable
// projection of an order awaiting pickup. An offer is published alongside its
// order and ceases to be listed the instant a courier claims it. At most one
// courier may claim a given offer; the conditional-update semantics that
// enforce this under concurrency live in the persistence adapter.
package offer

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrOfferIsNotConstructed is returned when a DeliveryOffer instance was not
	// created through NewDeliveryOffer or RestoreDeliveryOffer.
	ErrOfferIsNotConstructed = errors.New("DeliveryOffer must be created via NewDeliveryOffer constructor")

	// ErrOfferAlreadyClaimed is returned when a courier attempts to claim an
	// offer another courier already won.
	ErrOfferAlreadyClaimed = errors.New("delivery offer is already claimed")
)

// DeliveryOffer is the claimable projection of an unassigned order.
// It references the originating order one-to-one while unclaimed and carries
// everything a courier needs to decide: route endpoints, distance, payout,
// pickup date, and delivery deadline.
type DeliveryOffer struct {
	id           kernel.UUID
	orderID      kernel.UUID
	originCity   string
	originState  string
	destCity     string
	destState    string
	distanceKm   decimal.Decimal
	payout       kernel.Money
	pickupDate   time.Time
	deadline     time.Time
	status       Status
	publishedAt  time.Time

	isConstructed bool
}

// NewDeliveryOffer publishes a new offer in Available status.
// The payout is the courier's 70% share of the order freight, computed by the
// order aggregate and passed in here so the offer never re-derives pricing.
func NewDeliveryOffer(
	id kernel.UUID,
	orderID kernel.UUID,
	originCity, originState string,
	destCity, destState string,
	distanceKm decimal.Decimal,
	payout kernel.Money,
	pickupDate time.Time,
	deadline time.Time,
	now time.Time,
) (*DeliveryOffer, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryOffer{
		id:            id,
		orderID:       orderID,
		originCity:    originCity,
		originState:   originState,
		destCity:      destCity,
		destState:     destState,
		distanceKm:    distanceKm,
		payout:        payout,
		pickupDate:    pickupDate,
		deadline:      deadline,
		status:        Available,
		publishedAt:   now,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryOffer reconstructs an offer from persistence.
func RestoreDeliveryOffer(
	id kernel.UUID,
	orderID kernel.UUID,
	originCity, originState string,
	destCity, destState string,
	distanceKm decimal.Decimal,
	payout kernel.Money,
	pickupDate time.Time,
	deadline time.Time,
	status Status,
	publishedAt time.Time,
) (*DeliveryOffer, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryOffer{
		id:            id,
		orderID:       orderID,
		originCity:    originCity,
		originState:   originState,
		destCity:      destCity,
		destState:     destState,
		distanceKm:    distanceKm,
		payout:        payout,
		pickupDate:    pickupDate,
		deadline:      deadline,
		status:        status,
		publishedAt:   publishedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the offer was properly constructed.
func (d *DeliveryOffer) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer's unique identifier.
func (d *DeliveryOffer) ID() kernel.UUID {
	return d.id
}

// OrderID returns the originating order's identifier.
func (d *DeliveryOffer) OrderID() kernel.UUID {
	return d.orderID
}

// OriginCity returns the pickup city.
func (d *DeliveryOffer) OriginCity() string {
	return d.originCity
}

// OriginState returns the pickup state.
func (d *DeliveryOffer) OriginState() string {
	return d.originState
}

// DestCity returns the destination city.
func (d *DeliveryOffer) DestCity() string {
	return d.destCity
}

// DestState returns the destination state.
func (d *DeliveryOffer) DestState() string {
	return d.destState
}

// DistanceKm returns the route distance estimate in kilometers.
func (d *DeliveryOffer) DistanceKm() decimal.Decimal {
	return d.distanceKm
}

// Payout returns the courier payout for fulfilling the offer.
func (d *DeliveryOffer) Payout() kernel.Money {
	return d.payout
}

// PickupDate returns the requested pickup date.
func (d *DeliveryOffer) PickupDate() time.Time {
	return d.pickupDate
}

// Deadline returns the delivery deadline.
func (d *DeliveryOffer) Deadline() time.Time {
	return d.deadline
}

// Status returns the current offer status.
func (d *DeliveryOffer) Status() Status {
	return d.status
}

// PublishedAt returns the publication timestamp.
func (d *DeliveryOffer) PublishedAt() time.Time {
	return d.publishedAt
}

// Claim flips the offer to Claimed. Returns ErrOfferAlreadyClaimed when the
// offer was already won. This models the transition for in-memory aggregates;
// the race between concurrent claimers is decided by the repository's
// conditional update, not here.
func (d *DeliveryOffer) Claim() error {
	newStatus, err := d.status.Claim()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}
