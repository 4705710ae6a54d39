// Package jobs provides scheduled background tasks for the freight back-office.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TrackingRefreshJob - Runs every ten minutes to pull carrier tracking
// updates for departures in transit and advance their parcels.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, refreshTrackingHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A departure without an open carrier leg is skipped silently: nothing to
// refresh is a normal state. Gateway failures and persistence errors are
// logged and the job moves on to the next departure, so one bad departure
// never starves the rest.
package jobs
