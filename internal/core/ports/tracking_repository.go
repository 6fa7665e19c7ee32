package ports

import (
	"context"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for tracking events.
// The history is append-only; events are never updated or deleted.
type TrackingRepository interface {
	// Add appends a tracking event to the order history.
	Add(ctx context.Context, event *tracking.Event) error

	// GetAllByOrder retrieves the order's tracking history, oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Event, error)
}
