package queries

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrGetCourierStatisticsQueryIsNotConstructed = errors.New(
		"GetCourierStatisticsQuery must be created via NewGetCourierStatisticsQuery constructor",
	)
)

// GetCourierStatisticsQuery retrieves a courier's materialized statistics.
type GetCourierStatisticsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierStatisticsQuery creates a query for the courier's statistics.
func NewGetCourierStatisticsQuery(courierID kernel.UUID) (GetCourierStatisticsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierStatisticsQuery{}, err
	}

	return GetCourierStatisticsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatisticsQueryIsNotConstructed)
}

// CourierID returns the courier whose statistics are retrieved.
func (q GetCourierStatisticsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierStatisticsQueryResponse is the courier's statistics row. A
// courier with no completed deliveries gets an all-zero response.
type GetCourierStatisticsQueryResponse struct {
	CourierID       kernel.UUID
	DeliveriesTotal int
	EarningsToday   kernel.Money
	EarningsWeek    kernel.Money
	EarningsTotal   kernel.Money
	UpdatedAt       time.Time
}
