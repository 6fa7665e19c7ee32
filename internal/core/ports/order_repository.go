package ports

import (
	"context"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllBySupplier retrieves all orders created by the given supplier.
	GetAllBySupplier(ctx context.Context, supplierID kernel.UUID) ([]*order.Order, error)

	// GetAllAwaitingPickupWithoutOffer retrieves orders stuck in AwaitingPickup
	// status with no available offer on record. Used by offer reconciliation to
	// repair the order-without-offer inconsistency.
	GetAllAwaitingPickupWithoutOffer(ctx context.Context) ([]*order.Order, error)
}
