package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reviewMonitorJob *ReviewMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(counter OrderCounter, logger *slog.Logger) *JobManager {
	return &JobManager{
		reviewMonitorJob: NewReviewMonitorJob(counter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reviewMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start review monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reviewMonitorJob.Stop()
}
