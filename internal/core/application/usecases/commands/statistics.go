package commands

import (
	"context"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/stats"
)

// recomputeCourierStatistics rewrites the courier's materialized statistics
// from the earnings records: full sums over the today/week/all-time windows,
// never increments, so repeated runs converge on the same row.
func recomputeCourierStatistics(ctx context.Context, uow UoW, courierID kernel.UUID, now time.Time) error {
	earningsRepo := uow.EarningsRepository()

	today, err := earningsRepo.SumPendingSince(ctx, courierID, startOfDay(now))
	if err != nil {
		return err
	}

	week, err := earningsRepo.SumPendingSince(ctx, courierID, startOfWeek(now))
	if err != nil {
		return err
	}

	total, err := earningsRepo.SumPendingSince(ctx, courierID, time.Time{})
	if err != nil {
		return err
	}

	deliveries, err := earningsRepo.CountByCourier(ctx, courierID)
	if err != nil {
		return err
	}

	return uow.StatsRepository().UpsertCourier(ctx, stats.CourierStatistics{
		CourierID:       courierID,
		DeliveriesTotal: deliveries,
		EarningsToday:   today,
		EarningsWeek:    week,
		EarningsTotal:   total,
		UpdatedAt:       now,
	})
}

// recomputeSupplierStatistics rewrites the supplier's materialized statistics
// from the order table counts.
func recomputeSupplierStatistics(ctx context.Context, uow UoW, supplierID kernel.UUID, now time.Time) error {
	total, inProgress, delivered, err := uow.StatsRepository().CountOrdersBySupplier(ctx, supplierID)
	if err != nil {
		return err
	}

	return uow.StatsRepository().UpsertSupplier(ctx, stats.SupplierStatistics{
		SupplierID:       supplierID,
		OrdersTotal:      total,
		OrdersInProgress: inProgress,
		OrdersDelivered:  delivered,
		UpdatedAt:        now,
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the most recent Sunday.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}
