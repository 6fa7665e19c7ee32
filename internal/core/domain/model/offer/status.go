package offer

import (
	"fmt"

	"mainbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery offer.
//
// State transitions:
//
//	Available ──> Claimed
//
// Claimed is terminal; a claimed offer ceases to be listed and ownership of
// the underlying order transfers to the claiming courier.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the offer is listed and claimable.
	Available

	// Claimed means a courier won the offer. Terminal.
	Claimed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		Claimed:       "Claimed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Available && s != Claimed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Claim transitions the status to Claimed.
// Returns ErrOfferAlreadyClaimed when the offer was already claimed.
func (s Status) Claim() (Status, error) {
	switch s {
	case Available:
		return Claimed, nil
	case Claimed:
		return 0, ErrOfferAlreadyClaimed
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to claim", s.String()))
	}
}
