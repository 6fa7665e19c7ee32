// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"mainbridge/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW manages transactions across the order, offer, earnings, tracking,
	// and statistics tables. Every lifecycle command touches at least three
	// of them (creation alone writes order + tracking event + offer), so
	// one wide unit of work replaces per-aggregate variants.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   offerRepo := uow.OfferRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepository() ports.OrderRepository
		OfferRepository() ports.OfferRepository
		EarningsRepository() ports.EarningsRepository
		TrackingRepository() ports.TrackingRepository
		StatsRepository() ports.StatsRepository
	}

	// UoWFactory creates new unit of work instances, one per command execution.
	UoWFactory interface {
		Create() UoW
	}
)
