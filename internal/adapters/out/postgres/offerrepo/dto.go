// Package offerrepo provides data transfer objects and mapping functions for
// delivery offer persistence, including the conditional claim update that
// decides the race between concurrent claimers.
package offerrepo

import (
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferDTO represents the database structure for persisting delivery offers.
type OfferDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	OriginCity  string
	OriginState string
	DestCity    string
	DestState   string
	DistanceKm  decimal.Decimal `gorm:"type:numeric(10,2)"`
	Payout      decimal.Decimal `gorm:"type:numeric(12,2)"`
	PickupDate  time.Time
	Deadline    time.Time
	Status      int `gorm:"index"`
	PublishedAt time.Time
}

// TableName overrides GORM's default naming convention to use "delivery_offers".
func (OfferDTO) TableName() string {
	return "delivery_offers"
}

// fromDomain converts an offer aggregate to its database representation.
func fromDomain(aggregate *offer.DeliveryOffer) OfferDTO {
	return OfferDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		OriginCity:  aggregate.OriginCity(),
		OriginState: aggregate.OriginState(),
		DestCity:    aggregate.DestCity(),
		DestState:   aggregate.DestState(),
		DistanceKm:  aggregate.DistanceKm(),
		Payout:      aggregate.Payout().Amount(),
		PickupDate:  aggregate.PickupDate(),
		Deadline:    aggregate.Deadline(),
		Status:      int(aggregate.Status()),
		PublishedAt: aggregate.PublishedAt(),
	}
}

// toDomain converts a database DTO back into an offer aggregate.
func toDomain(dto OfferDTO) (*offer.DeliveryOffer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	payout, err := kernel.NewMoney(dto.Payout)
	if err != nil {
		return nil, err
	}

	return offer.RestoreDeliveryOffer(
		id,
		orderID,
		dto.OriginCity,
		dto.OriginState,
		dto.DestCity,
		dto.DestState,
		dto.DistanceKm,
		payout,
		dto.PickupDate,
		dto.Deadline,
		offer.Status(dto.Status),
		dto.PublishedAt,
	)
}
