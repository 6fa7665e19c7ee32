package jobs

import (
	"context"
	"log/slog"

	"mainbridge/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatisticsRefreshJob periodically recomputes every materialized courier and
// supplier statistics row. The today/week earnings windows shift at midnight
// without any write to trigger a recompute, so the rows drift stale until the
// next delivery; the hourly refresh bounds that drift.
type StatisticsRefreshJob struct {
	handler commands.RefreshStatisticsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatisticsRefreshJob creates a job that refreshes statistics every hour.
func NewStatisticsRefreshJob(handler commands.RefreshStatisticsCommandHandler, logger *slog.Logger) *StatisticsRefreshJob {
	return &StatisticsRefreshJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "statistics_refresh_job"),
	}
}

// Start begins the refresh job.
func (j *StatisticsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("@every 1h", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshStatisticsCommand()

		refreshed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Statistics refresh job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Refreshed materialized statistics", "rows", refreshed)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics refresh job started (running every hour)")
	return nil
}

// Stop stops the refresh job.
func (j *StatisticsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics refresh job stopped")
}
