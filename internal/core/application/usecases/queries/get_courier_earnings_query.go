package queries

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrGetCourierEarningsQueryIsNotConstructed = errors.New(
		"GetCourierEarningsQuery must be created via NewGetCourierEarningsQuery constructor",
	)
)

// GetCourierEarningsQuery retrieves a courier's earnings: the pending sums
// for today, the current week, and all time, plus the per-delivery records.
type GetCourierEarningsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierEarningsQuery creates a query for the courier's earnings.
func NewGetCourierEarningsQuery(courierID kernel.UUID) (GetCourierEarningsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierEarningsQuery{}, err
	}

	return GetCourierEarningsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierEarningsQueryIsNotConstructed)
}

// CourierID returns the courier whose earnings are retrieved.
func (q GetCourierEarningsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierEarningsQueryResponse carries the pending earnings sums over the
// three reporting windows and the individual records, newest first.
type GetCourierEarningsQueryResponse struct {
	Today   kernel.Money
	Week    kernel.Money
	Total   kernel.Money
	Records []CourierEarningsRecord
}

// CourierEarningsRecord is one payout entry in the earnings listing.
type CourierEarningsRecord struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	Value       kernel.Money
	Status      string
	CreatedAt   time.Time
}
