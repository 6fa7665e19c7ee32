package queries

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrGetSupplierStatisticsQueryIsNotConstructed = errors.New(
		"GetSupplierStatisticsQuery must be created via NewGetSupplierStatisticsQuery constructor",
	)
)

// GetSupplierStatisticsQuery retrieves a supplier's materialized statistics.
type GetSupplierStatisticsQuery struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSupplierStatisticsQuery creates a query for the supplier's statistics.
func NewGetSupplierStatisticsQuery(supplierID kernel.UUID) (GetSupplierStatisticsQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierStatisticsQuery{}, err
	}

	return GetSupplierStatisticsQuery{
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierStatisticsQueryIsNotConstructed)
}

// SupplierID returns the supplier whose statistics are retrieved.
func (q GetSupplierStatisticsQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// GetSupplierStatisticsQueryResponse is the supplier's statistics row. A
// supplier with no orders yet gets an all-zero response.
type GetSupplierStatisticsQueryResponse struct {
	SupplierID       kernel.UUID
	OrdersTotal      int
	OrdersInProgress int
	OrdersDelivered  int
	UpdatedAt        time.Time
}
