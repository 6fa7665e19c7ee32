// Package jobs provides scheduled background tasks for the brokerage service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OfferReconciliationJob - Runs every minute to republish delivery offers
// for awaiting-pickup orders that lost theirs to a partial failure
//
// 2. StatisticsRefreshJob - Runs every hour to recompute the materialized
// courier and supplier statistics rows, keeping the rolling earnings windows
// current after midnight rollovers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileOffersHandler, refreshStatisticsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next tick; a job never stops
// itself on error.
package jobs
