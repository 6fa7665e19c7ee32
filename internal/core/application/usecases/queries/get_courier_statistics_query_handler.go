package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCourierStatisticsQueryHandler reads the courier's materialized
// statistics row. Couriers without a row yet (no completed delivery) get an
// all-zero response instead of an error.
type GetCourierStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierStatisticsQueryHandler creates a handler for courier
// statistics queries.
func NewGetCourierStatisticsQueryHandler(db *gorm.DB) GetCourierStatisticsQueryHandler {
	return GetCourierStatisticsQueryHandler{db: db}
}

// Handle executes the query and returns the courier's statistics.
func (h GetCourierStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatisticsQuery,
) (GetCourierStatisticsQueryResponse, error) {
	var resp GetCourierStatisticsQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	resp.CourierID = query.CourierID()
	resp.EarningsToday = kernel.ZeroMoney()
	resp.EarningsWeek = kernel.ZeroMoney()
	resp.EarningsTotal = kernel.ZeroMoney()

	var today, week, total decimal.Decimal
	var updatedAt time.Time
	row := h.db.WithContext(ctx).Raw(`
		SELECT deliveries_total, earnings_today, earnings_week, earnings_total, updated_at
		FROM courier_statistics
		WHERE courier_id = ?
	`, query.CourierID().Bytes()).Row()

	err := row.Scan(&resp.DeliveriesTotal, &today, &week, &total, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, nil
	}
	if err != nil {
		return resp, err
	}

	if resp.EarningsToday, err = kernel.NewMoney(today); err != nil {
		return resp, err
	}
	if resp.EarningsWeek, err = kernel.NewMoney(week); err != nil {
		return resp, err
	}
	if resp.EarningsTotal, err = kernel.NewMoney(total); err != nil {
		return resp, err
	}
	resp.UpdatedAt = updatedAt

	return resp, nil
}
