package commands

import (
	"errors"

	"mainbridge/internal/pkg/guard"
)

var (
	ErrReconcileOffersCommandIsNotConstructed = errors.New(
		"ReconcileOffersCommand must be created via NewReconcileOffersCommand constructor",
	)
)

// ReconcileOffersCommand triggers the republication of delivery offers for
// orders stuck awaiting pickup without one. The command carries no data; it
// exists to keep the handler entry point uniform with the other commands.
type ReconcileOffersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewReconcileOffersCommand creates a command to reconcile missing offers.
func NewReconcileOffersCommand() ReconcileOffersCommand {
	return ReconcileOffersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOffersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOffersCommandIsNotConstructed)
}
