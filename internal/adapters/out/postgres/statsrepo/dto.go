// Package statsrepo persists the materialized courier and supplier
// statistics projections. Rows are always written whole by the recompute
// path, never incremented.
package statsrepo

import (
	"time"

	"mainbridge/internal/core/domain/model/stats"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourierStatisticsDTO represents the courier statistics row.
type CourierStatisticsDTO struct {
	CourierID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DeliveriesTotal int
	EarningsToday   decimal.Decimal `gorm:"type:numeric(12,2)"`
	EarningsWeek    decimal.Decimal `gorm:"type:numeric(12,2)"`
	EarningsTotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming convention to use "courier_statistics".
func (CourierStatisticsDTO) TableName() string {
	return "courier_statistics"
}

// SupplierStatisticsDTO represents the supplier statistics row.
type SupplierStatisticsDTO struct {
	SupplierID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrdersTotal      int
	OrdersInProgress int
	OrdersDelivered  int
	UpdatedAt        time.Time
}

// TableName overrides GORM's default naming convention to use "supplier_statistics".
func (SupplierStatisticsDTO) TableName() string {
	return "supplier_statistics"
}

func courierFromDomain(s stats.CourierStatistics) CourierStatisticsDTO {
	return CourierStatisticsDTO{
		CourierID:       s.CourierID.Bytes(),
		DeliveriesTotal: s.DeliveriesTotal,
		EarningsToday:   s.EarningsToday.Amount(),
		EarningsWeek:    s.EarningsWeek.Amount(),
		EarningsTotal:   s.EarningsTotal.Amount(),
		UpdatedAt:       s.UpdatedAt,
	}
}

func supplierFromDomain(s stats.SupplierStatistics) SupplierStatisticsDTO {
	return SupplierStatisticsDTO{
		SupplierID:       s.SupplierID.Bytes(),
		OrdersTotal:      s.OrdersTotal,
		OrdersInProgress: s.OrdersInProgress,
		OrdersDelivered:  s.OrdersDelivered,
		UpdatedAt:        s.UpdatedAt,
	}
}
