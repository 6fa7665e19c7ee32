package offerrepo

import (
	"context"
	"errors"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/offer"
	"mainbridge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.DeliveryOffer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.DeliveryOffer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the offer published for the given order.
func (r *GormOfferRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*offer.DeliveryOffer, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer by order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim atomically flips the offer from Available to Claimed with a
// conditional update. When several couriers race on the same offer, the
// database serializes the updates and exactly one matches the Available
// predicate; everyone else sees zero rows affected and loses with
// offer.ErrOfferAlreadyClaimed.
func (r *GormOfferRepository) Claim(ctx context.Context, id kernel.UUID) (*offer.DeliveryOffer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(offer.Available)).
		Update("status", int(offer.Claimed))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Zero rows means either a lost race or a missing offer.
		var exists int64
		err := r.db.WithContext(ctx).
			Model(&OfferDTO{}).
			Where("id = ?", id.Bytes()).
			Count(&exists).Error
		if err != nil {
			return nil, err
		}
		if exists == 0 {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, offer.ErrOfferAlreadyClaimed
	}

	claimed, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(claimed.ID(), claimed)
	return claimed, nil
}

// Withdraw removes the order's offer from listing if it is still unclaimed.
// Withdrawing a claimed or missing offer is a no-op.
func (r *GormOfferRepository) Withdraw(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(offer.Available)).
		Delete(&OfferDTO{}).Error
}
