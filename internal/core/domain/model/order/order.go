package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPickupDateInPast is returned when the requested pickup date is before today.
	ErrPickupDateInPast = errors.New("pickup date must not be in the past")

	// ErrCourierNotAssigned is returned when a courier tries to act on an order
	// that is assigned to somebody else (or to nobody).
	ErrCourierNotAssigned = errors.New("order is not assigned to this courier")
)

// CourierShare is the fraction of the freight value paid out to the courier.
var CourierShare = decimal.New(7, -1) // 0.7

// Order is the aggregate root of a shipment request. It owns the order
// lifecycle from creation through courier claiming, transit, and delivery
// confirmation, together with the freight computed at creation time.
//
// Order maintains these invariants:
//   - Identity, supplier, recipient, address, cargo, and tier are valid
//   - Freight, total, and expected delivery are computed once at creation
//     and never recomputed
//   - The courier is set exactly while the status is not AwaitingPickup
//     or Cancelled
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or restored through RestoreOrder
type Order struct {
	id               kernel.UUID
	number           string
	supplierID       kernel.UUID
	courierID        *kernel.UUID
	recipient        Recipient
	address          kernel.Address
	cargo            Cargo
	tier             ServiceTier
	freight          kernel.Money
	total            kernel.Money
	pickupDate       time.Time
	expectedDelivery time.Time
	notes            string
	status           Status
	createdAt        time.Time
	deliveredAt      *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in AwaitingPickup status, computing the
// freight value, total, expected delivery date, and the human-readable
// order number from the tariff of the requested service tier.
//
// The pickup date must not be before the creation date (day precision).
// All computed fields are fixed at this point and never recomputed.
func NewOrder(
	id kernel.UUID,
	supplierID kernel.UUID,
	recipient Recipient,
	address kernel.Address,
	cargo Cargo,
	tier ServiceTier,
	pickupDate time.Time,
	notes string,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		supplierID.Validate(),
		recipient.Validate(),
		address.Validate(),
		cargo.Validate(),
		tier.Validate(),
	); err != nil {
		return nil, err
	}

	if truncateToDay(pickupDate).Before(truncateToDay(now)) {
		return nil, ErrPickupDateInPast
	}

	freight, err := tier.Freight(cargo.WeightKg())
	if err != nil {
		return nil, err
	}

	return &Order{
		id:               id,
		number:           buildOrderNumber(id, now),
		supplierID:       supplierID,
		recipient:        recipient,
		address:          address,
		cargo:            cargo,
		tier:             tier,
		freight:          freight,
		total:            freight,
		pickupDate:       truncateToDay(pickupDate),
		expectedDelivery: tier.ExpectedDelivery(truncateToDay(pickupDate)),
		notes:            notes,
		status:           AwaitingPickup,
		createdAt:        now,
		isConstructed:    true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time pricing. It still checks the status/courier consistency
// invariant, so corrupted rows fail loudly instead of propagating.
func RestoreOrder(
	id kernel.UUID,
	number string,
	supplierID kernel.UUID,
	courierID *kernel.UUID,
	recipient Recipient,
	address kernel.Address,
	cargo Cargo,
	tier ServiceTier,
	freight kernel.Money,
	total kernel.Money,
	pickupDate time.Time,
	expectedDelivery time.Time,
	notes string,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		supplierID.Validate(),
		recipient.Validate(),
		address.Validate(),
		cargo.Validate(),
		tier.Validate(),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	return &Order{
		id:               id,
		number:           number,
		supplierID:       supplierID,
		courierID:        courierID,
		recipient:        recipient,
		address:          address,
		cargo:            cargo,
		tier:             tier,
		freight:          freight,
		total:            total,
		pickupDate:       pickupDate,
		expectedDelivery: expectedDelivery,
		notes:            notes,
		status:           status,
		createdAt:        createdAt,
		deliveredAt:      deliveredAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number, e.g. "MB-20240301-5A2B9C1D".
func (o *Order) Number() string {
	return o.number
}

// Supplier returns the id of the supplier that created the order.
func (o *Order) Supplier() kernel.UUID {
	return o.supplierID
}

// Courier returns the assigned courier's id, or nil while unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Recipient returns the shipment recipient.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Address returns the destination address.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Cargo returns the cargo descriptor.
func (o *Order) Cargo() Cargo {
	return o.cargo
}

// Tier returns the service tier.
func (o *Order) Tier() ServiceTier {
	return o.tier
}

// Freight returns the freight value computed at creation.
func (o *Order) Freight() kernel.Money {
	return o.freight
}

// Total returns the total value charged to the supplier.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PickupDate returns the requested pickup date (day precision).
func (o *Order) PickupDate() time.Time {
	return o.pickupDate
}

// ExpectedDelivery returns the expected delivery date computed at creation.
func (o *Order) ExpectedDelivery() time.Time {
	return o.expectedDelivery
}

// Notes returns the free-form supplier notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil until delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CourierPayout returns the courier's share of the freight value (70%).
func (o *Order) CourierPayout() kernel.Money {
	return o.freight.MulFraction(CourierShare)
}

// Claim assigns the order to the courier that won the delivery-offer claim
// and moves the status from AwaitingPickup to Collected.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// AdvanceTransit applies a carrier-reported transit update
// (Collected -> InTransit -> OutForDelivery). Only the assigned courier
// may report transit updates.
func (o *Order) AdvanceTransit(courierID kernel.UUID, next Status) error {
	if err := o.validateAssignee(courierID); err != nil {
		return err
	}

	newStatus, err := o.status.AdvanceTransit(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered by the given courier and stamps the
// delivery time. The caller must be the assigned courier and the order must
// be in an in-progress status; confirming an already delivered order fails,
// so a duplicate confirmation can never accrue earnings twice.
func (o *Order) Complete(courierID kernel.UUID, now time.Time) error {
	if err := o.validateAssignee(courierID); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel performs an administrative cancellation from any non-terminal
// status. The assignee is cleared to keep the status/courier invariant.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = nil
	return nil
}

func (o *Order) validateAssignee(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrCourierNotAssigned
	}
	return nil
}

// buildOrderNumber derives the human-readable order number from the creation
// date and the first id bytes, e.g. "MB-20240301-5A2B9C1D".
func buildOrderNumber(id kernel.UUID, now time.Time) string {
	raw := id.Bytes()
	return fmt.Sprintf("MB-%s-%s",
		now.Format("20060102"),
		strings.ToUpper(fmt.Sprintf("%x", raw[:4])),
	)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
