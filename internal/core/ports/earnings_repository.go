package ports

import (
	"context"
	"time"

	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"
)

// EarningsRepository defines the persistence contract for earnings records.
type EarningsRepository interface {
	// Add persists a new earnings record.
	Add(ctx context.Context, record *earnings.Record) error

	// GetAllByCourier retrieves every earnings record of the given courier,
	// newest first.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*earnings.Record, error)

	// SumPendingSince sums the pending earnings of the courier accrued at or
	// after the given instant. Pass the zero time for the all-time sum.
	// Used for the idempotent recomputation of today/week/total aggregates.
	SumPendingSince(ctx context.Context, courierID kernel.UUID, since time.Time) (kernel.Money, error)

	// CountByCourier counts the courier's earnings records (one per
	// completed delivery).
	CountByCourier(ctx context.Context, courierID kernel.UUID) (int, error)
}
