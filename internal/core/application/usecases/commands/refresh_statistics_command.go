package commands

import (
	"errors"

	"mainbridge/internal/pkg/guard"
)

var (
	ErrRefreshStatisticsCommandIsNotConstructed = errors.New(
		"RefreshStatisticsCommand must be created via NewRefreshStatisticsCommand constructor",
	)
)

// RefreshStatisticsCommand triggers a full recompute of every materialized
// courier and supplier statistics row. The command carries no data.
type RefreshStatisticsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewRefreshStatisticsCommand creates a command to refresh all statistics rows.
func NewRefreshStatisticsCommand() RefreshStatisticsCommand {
	return RefreshStatisticsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RefreshStatisticsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshStatisticsCommandIsNotConstructed)
}
