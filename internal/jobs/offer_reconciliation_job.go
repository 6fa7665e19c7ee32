package jobs

import (
	"context"
	"log/slog"

	"mainbridge/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OfferReconciliationJob republishes delivery offers for orders that are
// still awaiting pickup without an open offer. Such orders can appear if a
// crash or partial failure loses the offer row; the job restores the
// invariant that every awaiting order is claimable.
type OfferReconciliationJob struct {
	handler commands.ReconcileOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferReconciliationJob creates a job that reconciles offers every minute.
func NewOfferReconciliationJob(handler commands.ReconcileOffersCommandHandler, logger *slog.Logger) *OfferReconciliationJob {
	return &OfferReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "offer_reconciliation_job"),
	}
}

// Start begins the reconciliation job.
func (j *OfferReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileOffersCommand()

		republished, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Offer reconciliation job failed", "error", err)
			return
		}

		if republished > 0 {
			j.logger.InfoContext(ctx, "Republished missing delivery offers", "count", republished)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *OfferReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer reconciliation job stopped")
}
