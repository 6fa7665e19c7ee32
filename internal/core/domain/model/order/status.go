package order

import (
	"fmt"

	"mainbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	AwaitingPickup ──> Collected ──> InTransit ──> OutForDelivery ──┐
//	       │                │            │               │          │
//	       │                └────────────┴───────────────┴──> Delivered
//	       │
//	       └──────── any non-terminal ──> Cancelled
//
// Collected, InTransit, and OutForDelivery may each move directly to
// Delivered, because couriers confirm completion without necessarily
// reporting every intermediate transit event. Delivered and Cancelled
// are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingPickup is the initial status when an order is first created.
	// Orders in this status have a published delivery offer and no courier.
	AwaitingPickup

	// Collected indicates a courier has claimed the delivery offer and
	// picked up the cargo.
	Collected

	// InTransit indicates the cargo is moving toward its destination.
	// Set by the external tracking integration.
	InTransit

	// OutForDelivery indicates the cargo is on its final leg.
	// Set by the external tracking integration.
	OutForDelivery

	// Delivered indicates the courier confirmed completion. Terminal.
	Delivered

	// Cancelled indicates administrative cancellation. Terminal.
	Cancelled
)

// getStatusStrings returns the string representation of every Status value,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		AwaitingPickup: "AwaitingPickup",
		Collected:      "Collected",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns only the valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingPickup: "AwaitingPickup",
		Collected:      "Collected",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// ParseStatus converts the wire representation ("InTransit",
// "OutForDelivery", ...) into a Status.
func ParseStatus(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", str))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsInProgress reports whether the order is between claiming and delivery,
// i.e. assigned to a courier and eligible for delivery confirmation.
func (s Status) IsInProgress() bool {
	return s == Collected || s == InTransit || s == OutForDelivery
}

// Claim transitions the status to Collected.
//
// Valid transitions:
//   - AwaitingPickup -> Collected (courier won the offer claim)
//
// Returns an error for any other source status, including a second claim
// on an already collected order.
func (s Status) Claim() (Status, error) {
	if s != AwaitingPickup {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}

	return Collected, nil
}

// AdvanceTransit transitions the status along the transit chain:
// Collected -> InTransit -> OutForDelivery. These intermediate steps are
// reported by the external tracking integration, not driven by the core.
func (s Status) AdvanceTransit(next Status) (Status, error) {
	valid := (s == Collected && next == InTransit) ||
		(s == InTransit && next == OutForDelivery)
	if !valid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot advance to %s", s.String(), next.String()),
		)
	}

	return next, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Collected -> Delivered
//   - InTransit -> Delivered
//   - OutForDelivery -> Delivered
//
// Completing an already delivered or cancelled order fails, which is what
// makes double confirmation safe.
func (s Status) Complete() (Status, error) {
	if !s.IsInProgress() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Allowed from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment. The assignee must be absent exactly while the order is
// awaiting pickup or cancelled.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && (s == AwaitingPickup || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s != AwaitingPickup && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}
