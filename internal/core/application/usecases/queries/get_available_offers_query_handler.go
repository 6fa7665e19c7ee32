package queries

import (
	"context"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableOffersQueryHandler retrieves claimable delivery offers from the
// database, joined with the order table for the human-readable order number.
// Offers that were claimed or withdrawn never appear in the listing.
type GetAvailableOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOffersQueryHandler creates a handler for offer listing queries.
func NewGetAvailableOffersQueryHandler(db *gorm.DB) GetAvailableOffersQueryHandler {
	return GetAvailableOffersQueryHandler{db: db}
}

// Handle executes the query and returns open offers, oldest first, so
// long-waiting orders surface at the top of the listing.
func (h GetAvailableOffersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOffersQuery,
) ([]GetAvailableOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetAvailableOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.order_id,
			o.number,
			f.origin_city,
			f.origin_state,
			f.dest_city,
			f.dest_state,
			f.distance_km,
			f.payout,
			f.pickup_date,
			f.deadline,
			f.published_at
		FROM delivery_offers f
		JOIN orders o ON o.id = f.order_id
		WHERE f.status = ?
		ORDER BY f.published_at
	`, int(offer.Available)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableOffersQueryResponse
		var offerID, orderID uuid.UUID
		var distanceKm, payout decimal.Decimal
		var pickupDate, deadline, publishedAt time.Time

		err = rows.Scan(
			&offerID,
			&orderID,
			&resp.OrderNumber,
			&resp.OriginCity,
			&resp.OriginState,
			&resp.DestCity,
			&resp.DestState,
			&distanceKm,
			&payout,
			&pickupDate,
			&deadline,
			&publishedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.OfferID, err = kernel.UUIDFromBytes(offerID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.Payout, err = kernel.NewMoney(payout); err != nil {
			return nil, err
		}
		resp.DistanceKm = distanceKm
		resp.PickupDate = pickupDate
		resp.Deadline = deadline
		resp.PublishedAt = publishedAt

		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
