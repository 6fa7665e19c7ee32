// Package stats contains the materialized courier and supplier statistics.
// These are read-model projections owned by the order lifecycle: they are
// recomputed in full from source rows (earnings records and orders) after
// each relevant transition, never incremented, so recomputation is idempotent
// and concurrent confirmations for different orders cannot corrupt them.
package stats

import (
	"time"

	"mainbridge/internal/core/domain/model/kernel"
)

// CourierStatistics aggregates a courier's completed deliveries and pending
// earnings over the standard reporting windows.
type CourierStatistics struct {
	CourierID       kernel.UUID
	DeliveriesTotal int
	EarningsToday   kernel.Money
	EarningsWeek    kernel.Money
	EarningsTotal   kernel.Money
	UpdatedAt       time.Time
}

// SupplierStatistics aggregates a supplier's order counts by lifecycle stage.
type SupplierStatistics struct {
	SupplierID       kernel.UUID
	OrdersTotal      int
	OrdersInProgress int
	OrdersDelivered  int
	UpdatedAt        time.Time
}
