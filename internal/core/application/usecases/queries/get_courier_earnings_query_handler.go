package queries

import (
	"context"
	"time"

	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCourierEarningsQueryHandler retrieves a courier's earnings from the
// database: the pending sums are computed with filtered aggregates in one
// statement, the record listing in a second. The week window starts on the
// most recent Sunday at midnight.
type GetCourierEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierEarningsQueryHandler creates a handler for earnings queries.
func NewGetCourierEarningsQueryHandler(db *gorm.DB) GetCourierEarningsQueryHandler {
	return GetCourierEarningsQueryHandler{db: db}
}

// Handle executes the query and returns the earnings report.
func (h GetCourierEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierEarningsQuery,
) (GetCourierEarningsQueryResponse, error) {
	var resp GetCourierEarningsQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	now := time.Now()
	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)

	var today, week, total decimal.Decimal
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(value) FILTER (WHERE created_at >= ?), 0),
			COALESCE(SUM(value) FILTER (WHERE created_at >= ?), 0),
			COALESCE(SUM(value), 0)
		FROM earnings_records
		WHERE courier_id = ? AND status = ?
	`, dayStart, weekStart, query.CourierID().Bytes(), int(earnings.PaymentPending)).Row()
	if err := row.Scan(&today, &week, &total); err != nil {
		return resp, err
	}

	var err error
	if resp.Today, err = kernel.NewMoney(today); err != nil {
		return resp, err
	}
	if resp.Week, err = kernel.NewMoney(week); err != nil {
		return resp, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return resp, err
	}

	resp.Records = make([]CourierEarningsRecord, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.order_id,
			o.number,
			e.value,
			e.status,
			e.created_at
		FROM earnings_records e
		JOIN orders o ON o.id = e.order_id
		WHERE e.courier_id = ?
		ORDER BY e.created_at DESC
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var record CourierEarningsRecord
		var id, orderID uuid.UUID
		var value decimal.Decimal
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&record.OrderNumber,
			&value,
			&status,
			&createdAt,
		)
		if err != nil {
			return resp, err
		}

		if record.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return resp, err
		}
		if record.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return resp, err
		}
		if record.Value, err = kernel.NewMoney(value); err != nil {
			return resp, err
		}
		record.Status = earnings.PaymentStatus(status).String()
		record.CreatedAt = createdAt

		resp.Records = append(resp.Records, record)
	}

	if err = rows.Err(); err != nil {
		return resp, err
	}

	return resp, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the most recent Sunday.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}
