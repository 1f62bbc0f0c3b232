// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. Jobs are managed through JobManager, which
// starts and stops them as a unit.
package jobs

import (
	"fmt"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	withdrawalProcessingJob *WithdrawalProcessingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	processWithdrawalsHandler commands.ProcessWithdrawalsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		withdrawalProcessingJob: NewWithdrawalProcessingJob(processWithdrawalsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.withdrawalProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start withdrawal processing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.withdrawalProcessingJob.Stop()
}
