// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read through
// raw SQL against the same database the repositories write to, returning
// plain response structs instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAvailableOffersQueryIsNotConstructed = errors.New(
		"GetAvailableOffersQuery must be created via NewGetAvailableOffersQuery constructor",
	)
)

// GetAvailableOffersQuery retrieves every delivery offer still open for
// claiming, for the courier-facing offer listing.
type GetAvailableOffersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOffersQuery creates a query to list claimable offers.
// This is a parameterless query; offers are visible to every courier.
func NewGetAvailableOffersQuery() GetAvailableOffersQuery {
	return GetAvailableOffersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOffersQueryIsNotConstructed)
}

// GetAvailableOffersQueryResponse is one claimable offer with everything a
// courier needs to decide: route endpoints, distance, payout, and deadline.
type GetAvailableOffersQueryResponse struct {
	OfferID     kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	OriginCity  string
	OriginState string
	DestCity    string
	DestState   string
	DistanceKm  decimal.Decimal
	Payout      kernel.Money
	PickupDate  time.Time
	Deadline    time.Time
	PublishedAt time.Time
}
