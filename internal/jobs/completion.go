// Package jobs holds the background jobs of the service.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
)

// CompletionJob periodically moves confirmed bookings whose charter day has
// passed into the completed status.
type CompletionJob struct {
	bookingRepo BookingRepository
	schedule    string
	logger      Logger

	cron *cron.Cron
}

// NewCompletionJob creates the job. schedule is a standard cron expression,
// e.g. "0 3 * * *" for a nightly run.
func NewCompletionJob(bookingRepo BookingRepository, schedule string, logger Logger) *CompletionJob {
	return &CompletionJob{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		logger:      logger,
		cron:        cron.New(),
	}
}

// Start registers the schedule and begins running the job.
func (j *CompletionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("jobs: failed to register completion job: %w", err)
	}

	j.cron.Start()
	j.logger.Info("CompletionJob: started with schedule %q", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (j *CompletionJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("CompletionJob: stopped")
}

// Run executes one completion pass immediately. Used by Start via the
// scheduler and callable directly for manual runs.
func (j *CompletionJob) Run(ctx context.Context) error {
	// bookings before the start of today are finished charters
	cutoff := domain.NormalizeDate(time.Now())

	count, err := j.bookingRepo.CompleteFinished(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("jobs: completion pass failed: %w", err)
	}

	if count > 0 {
		j.logger.Info("CompletionJob: marked %d bookings as completed", count)
	}
	return nil
}

func (j *CompletionJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := j.Run(ctx); err != nil {
		j.logger.Error("CompletionJob: %v", err)
	}
}
