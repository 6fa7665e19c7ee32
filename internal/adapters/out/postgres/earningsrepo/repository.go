package earningsrepo

import (
	"context"
	"time"

	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormEarningsRepository implements EarningsRepository using GORM.
type GormEarningsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEarningsRepository creates a new GORM earnings repository.
func NewGormEarningsRepository(db *gorm.DB, tracker aggregateTracker) *GormEarningsRepository {
	return &GormEarningsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new earnings record to the database. The unique index on the
// order id rejects a second record for the same delivery at the database
// level, backing up the domain-level double-confirmation guard.
func (r *GormEarningsRepository) Add(ctx context.Context, record *earnings.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetAllByCourier retrieves the courier's earnings records, newest first.
func (r *GormEarningsRepository) GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*earnings.Record, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EarningsDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "courier_id = ?", courierID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*earnings.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// SumPendingSince sums the courier's pending earnings accrued at or after the
// given instant. The zero time produces the all-time sum.
func (r *GormEarningsRepository) SumPendingSince(
	ctx context.Context,
	courierID kernel.UUID,
	since time.Time,
) (kernel.Money, error) {
	if err := courierID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	query := r.db.WithContext(ctx).
		Model(&EarningsDTO{}).
		Where("courier_id = ? AND status = ?", courierID.Bytes(), int(earnings.PaymentPending))
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	var sum decimal.NullDecimal
	if err := query.Select("SUM(value)").Scan(&sum).Error; err != nil {
		return kernel.Money{}, err
	}
	if !sum.Valid {
		return kernel.ZeroMoney(), nil
	}

	return kernel.NewMoney(sum.Decimal)
}

// CountByCourier counts the courier's earnings records.
func (r *GormEarningsRepository) CountByCourier(ctx context.Context, courierID kernel.UUID) (int, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&EarningsDTO{}).
		Where("courier_id = ?", courierID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
