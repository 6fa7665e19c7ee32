package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GetSupplierStatisticsQueryHandler reads the supplier's materialized
// statistics row. Suppliers without a row yet get an all-zero response.
type GetSupplierStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierStatisticsQueryHandler creates a handler for supplier
// statistics queries.
func NewGetSupplierStatisticsQueryHandler(db *gorm.DB) GetSupplierStatisticsQueryHandler {
	return GetSupplierStatisticsQueryHandler{db: db}
}

// Handle executes the query and returns the supplier's statistics.
func (h GetSupplierStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierStatisticsQuery,
) (GetSupplierStatisticsQueryResponse, error) {
	var resp GetSupplierStatisticsQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	resp.SupplierID = query.SupplierID()

	var updatedAt time.Time
	row := h.db.WithContext(ctx).Raw(`
		SELECT orders_total, orders_in_progress, orders_delivered, updated_at
		FROM supplier_statistics
		WHERE supplier_id = ?
	`, query.SupplierID().Bytes()).Row()

	err := row.Scan(&resp.OrdersTotal, &resp.OrdersInProgress, &resp.OrdersDelivered, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, nil
	}
	if err != nil {
		return resp, err
	}
	resp.UpdatedAt = updatedAt

	return resp, nil
}
