package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOfferSweepSchedule runs the sweep every five minutes.
const DefaultOfferSweepSchedule = "0 */5 * * * *"

// RejectStaleOffersHandler is the use case the sweep runs.
type RejectStaleOffersHandler interface {
	Handle(ctx context.Context, command commands.RejectStaleOffersCommand) (int64, error)
}

// OfferSweepJob rejects offers left pending on loads that are no longer posted.
// Acceptance rejects the siblings in the same transaction, so on a healthy system the
// sweep finds nothing to do.
type OfferSweepJob struct {
	handler  RejectStaleOffersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOfferSweepJob creates the sweep on a seconds-precision cron schedule.
// An empty schedule falls back to DefaultOfferSweepSchedule.
func NewOfferSweepJob(handler RejectStaleOffersHandler, schedule string, logger *slog.Logger) *OfferSweepJob {
	if schedule == "" {
		schedule = DefaultOfferSweepSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OfferSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "offer_sweep_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *OfferSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer sweep job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep.
func (j *OfferSweepJob) Run() {
	ctx := context.Background()
	rejected, err := j.handler.Handle(ctx, commands.NewRejectStaleOffersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Offer sweep job failed", "error", err)
		return
	}
	if rejected > 0 {
		j.logger.InfoContext(ctx, "Rejected stale offers", "count", rejected)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *OfferSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Offer sweep job stopped")
}
