package jobs

import (
	"fmt"
	"log/slog"

	"mainbridge/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	offerReconciliationJob *OfferReconciliationJob
	statisticsRefreshJob   *StatisticsRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileOffersHandler commands.ReconcileOffersCommandHandler,
	refreshStatisticsHandler commands.RefreshStatisticsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		offerReconciliationJob: NewOfferReconciliationJob(reconcileOffersHandler, logger),
		statisticsRefreshJob:   NewStatisticsRefreshJob(refreshStatisticsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offerReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer reconciliation job: %w", err)
	}

	if err := jm.statisticsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start statistics refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offerReconciliationJob.Stop()
	jm.statisticsRefreshJob.Stop()
}
