package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderCounter counts orders sitting in a given lifecycle state.
type OrderCounter interface {
	CountInState(ctx context.Context, state order.State) (int64, error)
}

// ReviewMonitorJob periodically reports the number of orders waiting in
// review. Orders land there when a high-value transition is intercepted,
// and a growing backlog means reviewers are falling behind.
type ReviewMonitorJob struct {
	counter OrderCounter
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReviewMonitorJob creates a job that reports the review backlog once a minute.
func NewReviewMonitorJob(counter OrderCounter, logger *slog.Logger) *ReviewMonitorJob {
	return &ReviewMonitorJob{
		counter: counter,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "review_monitor_job"),
	}
}

// Start begins the review monitor job to run every minute.
func (j *ReviewMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		backlog, err := j.counter.CountInState(ctx, order.Review)
		if err != nil {
			j.logger.ErrorContext(ctx, "Review monitor job failed", "error", err)
			return
		}

		if backlog > 0 {
			j.logger.InfoContext(ctx, "Orders waiting for review", "count", backlog)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Review monitor job started (running every minute)")
	return nil
}

// Stop stops the review monitor job.
func (j *ReviewMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Review monitor job stopped")
}
