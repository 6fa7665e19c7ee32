// Package earnings contains the EarningsRecord entity: one row per completed
// delivery, created at delivery confirmation with the courier's 70% share of
// the order freight. Records start pending and are flipped to paid by the
// (external) payment process; their creation timestamps drive the daily and
// weekly earnings aggregates.
package earnings

import (
	"errors"
	"fmt"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when an EarningsRecord instance was
// not created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("EarningsRecord must be created via NewRecord constructor")

// PaymentStatus represents the payout state of one earnings record.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means the payout has been accrued but not transferred.
	PaymentPending

	// PaymentPaid means the payout was transferred to the courier.
	PaymentPaid
)

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "pending"
	case PaymentPaid:
		return "paid"
	default:
		return "unknown"
	}
}

// Record is a courier's payout entry for one completed order.
type Record struct {
	id        kernel.UUID
	courierID kernel.UUID
	orderID   kernel.UUID
	value     kernel.Money
	status    PaymentStatus
	createdAt time.Time

	isConstructed bool
}

// NewRecord creates a pending earnings record for a completed delivery.
// The value is the courier payout computed by the order aggregate.
func NewRecord(
	id kernel.UUID,
	courierID kernel.UUID,
	orderID kernel.UUID,
	value kernel.Money,
	now time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		courierID.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}
	if !value.Amount().IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%s is not greater than 0", value))
	}

	return &Record{
		id:            id,
		courierID:     courierID,
		orderID:       orderID,
		value:         value,
		status:        PaymentPending,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs an earnings record from persistence.
func RestoreRecord(
	id kernel.UUID,
	courierID kernel.UUID,
	orderID kernel.UUID,
	value kernel.Money,
	status PaymentStatus,
	createdAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		courierID.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Record{
		id:            id,
		courierID:     courierID,
		orderID:       orderID,
		value:         value,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// Courier returns the courier the payout belongs to.
func (r *Record) Courier() kernel.UUID {
	return r.courierID
}

// Order returns the completed order the payout was accrued for.
func (r *Record) Order() kernel.UUID {
	return r.orderID
}

// Value returns the payout amount.
func (r *Record) Value() kernel.Money {
	return r.value
}

// Status returns the payment status.
func (r *Record) Status() PaymentStatus {
	return r.status
}

// CreatedAt returns the accrual timestamp.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// MarkPaid flips a pending record to paid.
func (r *Record) MarkPaid() error {
	if r.status != PaymentPending {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%s is not a valid status to mark paid", r.status))
	}
	r.status = PaymentPaid
	return nil
}
