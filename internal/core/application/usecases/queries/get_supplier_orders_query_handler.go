package queries

import (
	"context"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSupplierOrdersQueryHandler retrieves a supplier's orders from the
// database. Statuses and tiers are rendered as their display strings, so the
// response can go straight onto the wire.
type GetSupplierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierOrdersQueryHandler creates a handler for supplier order
// listing queries.
func NewGetSupplierOrdersQueryHandler(db *gorm.DB) GetSupplierOrdersQueryHandler {
	return GetSupplierOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the supplier's orders, newest first.
func (h GetSupplierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierOrdersQuery,
) ([]GetSupplierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetSupplierOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			recipient_name,
			addr_city,
			addr_state,
			tier,
			freight,
			total,
			pickup_date,
			expected_delivery,
			created_at,
			delivered_at
		FROM orders
		WHERE supplier_id = ?
		ORDER BY created_at DESC
	`, query.SupplierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSupplierOrdersQueryResponse
		var id uuid.UUID
		var status, tier int
		var freight, total decimal.Decimal
		var pickupDate, expectedDelivery, createdAt time.Time
		var deliveredAt *time.Time

		err = rows.Scan(
			&id,
			&resp.Number,
			&status,
			&resp.RecipientName,
			&resp.DestCity,
			&resp.DestState,
			&tier,
			&freight,
			&total,
			&pickupDate,
			&expectedDelivery,
			&createdAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Freight, err = kernel.NewMoney(freight); err != nil {
			return nil, err
		}
		if resp.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()
		resp.Tier = order.ServiceTier(tier).String()
		resp.PickupDate = pickupDate
		resp.ExpectedDelivery = expectedDelivery
		resp.CreatedAt = createdAt
		resp.DeliveredAt = deliveredAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
