// Package jobs provides scheduled background tasks for the freight marketplace.
//
// Jobs use github.com/robfig/cron/v3 with seconds precision.
//
// # Available Jobs
//
// 1. OfferSweepJob - rejects offers still pending on loads that left the posted state
//
// # Usage
//
//	jobManager := jobs.NewJobManager(rejectStaleOffersHandler, cfg.OfferSweepSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep defaults to "0 */5 * * * *". Overlapping runs are skipped.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. The sweep only touches
// offers, never load status.
package jobs
