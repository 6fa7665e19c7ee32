// Package trackingrepo provides data transfer objects and mapping functions
// for the append-only tracking event history.
package trackingrepo

import (
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for persisting tracking
// events.
type TrackingEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	Location  string
	Note      string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "tracking_events".
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) TrackingEventDTO {
	return TrackingEventDTO{
		ID:        event.ID().Bytes(),
		OrderID:   event.Order().Bytes(),
		Status:    event.Status(),
		Location:  event.Location(),
		Note:      event.Note(),
		CreatedAt: event.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a tracking event.
func toDomain(dto TrackingEventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(
		id,
		orderID,
		dto.Status,
		dto.Location,
		dto.Note,
		dto.CreatedAt,
	)
}
