// Package earningsrepo provides data transfer objects and mapping functions
// for earnings record persistence.
package earningsrepo

import (
	"time"

	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EarningsDTO represents the database structure for persisting earnings
// records. Indexed by courier and creation time for the windowed sums.
type EarningsDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID       `gorm:"type:uuid;index:idx_earnings_courier_created"`
	OrderID   uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Value     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status    int
	CreatedAt time.Time       `gorm:"index:idx_earnings_courier_created"`
}

// TableName overrides GORM's default naming convention to use "earnings_records".
func (EarningsDTO) TableName() string {
	return "earnings_records"
}

// fromDomain converts an earnings record to its database representation.
func fromDomain(record *earnings.Record) EarningsDTO {
	return EarningsDTO{
		ID:        record.ID().Bytes(),
		CourierID: record.Courier().Bytes(),
		OrderID:   record.Order().Bytes(),
		Value:     record.Value().Amount(),
		Status:    int(record.Status()),
		CreatedAt: record.CreatedAt(),
	}
}

// toDomain converts a database DTO back into an earnings record.
func toDomain(dto EarningsDTO) (*earnings.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	value, err := kernel.NewMoney(dto.Value)
	if err != nil {
		return nil, err
	}

	return earnings.RestoreRecord(
		id,
		courierID,
		orderID,
		value,
		earnings.PaymentStatus(dto.Status),
		dto.CreatedAt,
	)
}
