package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/order"
	"mainbridge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler retrieves an order's tracking history from the
// database. A missing order is reported with errs.ErrObjectNotFound so the
// transport layer can distinguish it from an order with no events yet.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the query and returns the order's tracking history.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	var resp GetOrderTrackingQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	var number string
	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT number, status FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&number, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return resp, err
	}

	resp.OrderID = query.OrderID()
	resp.Number = number
	resp.Status = order.Status(status).String()
	resp.Events = make([]OrderTrackingEvent, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, location, note, created_at
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY created_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var event OrderTrackingEvent
		var createdAt time.Time

		if err = rows.Scan(&event.Status, &event.Location, &event.Note, &createdAt); err != nil {
			return resp, err
		}
		event.CreatedAt = createdAt

		resp.Events = append(resp.Events, event)
	}

	if err = rows.Err(); err != nil {
		return resp, err
	}

	return resp, nil
}
