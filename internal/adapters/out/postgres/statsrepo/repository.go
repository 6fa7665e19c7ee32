package statsrepo

import (
	"context"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/core/domain/model/stats"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatsRepository implements StatsRepository using GORM.
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GORM statistics repository.
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// UpsertCourier writes the recomputed courier statistics row.
func (r *GormStatsRepository) UpsertCourier(ctx context.Context, s stats.CourierStatistics) error {
	dto := courierFromDomain(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "courier_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// UpsertSupplier writes the recomputed supplier statistics row.
func (r *GormStatsRepository) UpsertSupplier(ctx context.Context, s stats.SupplierStatistics) error {
	dto := supplierFromDomain(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "supplier_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// CountOrdersBySupplier returns total, in-progress, and delivered order
// counts for the supplier in one scan.
func (r *GormStatsRepository) CountOrdersBySupplier(
	ctx context.Context,
	supplierID kernel.UUID,
) (total, inProgress, delivered int, err error) {
	if err = supplierID.Validate(); err != nil {
		return 0, 0, 0, err
	}

	row := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN (?, ?, ?)),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
		WHERE supplier_id = ?
	`,
		int(order.Collected), int(order.InTransit), int(order.OutForDelivery),
		int(order.Delivered),
		supplierID.Bytes(),
	).Row()

	if err = row.Scan(&total, &inProgress, &delivered); err != nil {
		return 0, 0, 0, err
	}

	return total, inProgress, delivered, nil
}

// GetCourierIDs returns the distinct couriers present in the earnings records.
func (r *GormStatsRepository) GetCourierIDs(ctx context.Context) ([]kernel.UUID, error) {
	return r.scanIDs(ctx, "SELECT DISTINCT courier_id FROM earnings_records")
}

// GetSupplierIDs returns the distinct suppliers present in the orders table.
func (r *GormStatsRepository) GetSupplierIDs(ctx context.Context) ([]kernel.UUID, error) {
	return r.scanIDs(ctx, "SELECT DISTINCT supplier_id FROM orders")
}

func (r *GormStatsRepository) scanIDs(ctx context.Context, query string) ([]kernel.UUID, error) {
	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
