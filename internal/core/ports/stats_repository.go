package ports

import (
	"context"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/stats"
)

// StatsRepository defines the persistence contract for the materialized
// courier and supplier statistics projections.
type StatsRepository interface {
	// UpsertCourier writes the recomputed courier statistics row.
	UpsertCourier(ctx context.Context, s stats.CourierStatistics) error

	// UpsertSupplier writes the recomputed supplier statistics row.
	UpsertSupplier(ctx context.Context, s stats.SupplierStatistics) error

	// CountOrdersBySupplier returns total, in-progress, and delivered order
	// counts for the supplier. Feeds the full supplier-statistics recompute.
	CountOrdersBySupplier(ctx context.Context, supplierID kernel.UUID) (total, inProgress, delivered int, err error)

	// GetCourierIDs returns every courier that has at least one earnings
	// record. Feeds the periodic statistics refresh.
	GetCourierIDs(ctx context.Context) ([]kernel.UUID, error)

	// GetSupplierIDs returns every supplier that has at least one order.
	// Feeds the periodic statistics refresh.
	GetSupplierIDs(ctx context.Context) ([]kernel.UUID, error)
}
