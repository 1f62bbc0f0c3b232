package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WithdrawalProcessingJob advances pending cash-out requests in the
// background. Runs every minute to settle the withdrawal queue.
type WithdrawalProcessingJob struct {
	handler commands.ProcessWithdrawalsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWithdrawalProcessingJob creates a new job for processing withdrawals.
// Uses ProcessWithdrawalsCommandHandler to settle pending cash-out requests.
func NewWithdrawalProcessingJob(handler commands.ProcessWithdrawalsCommandHandler, logger *slog.Logger) *WithdrawalProcessingJob {
	return &WithdrawalProcessingJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "withdrawal_processing_job"),
	}
}

// Start begins the withdrawal processing job to run every minute.
func (j *WithdrawalProcessingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessWithdrawalsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Withdrawal processing job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Withdrawal processing job started (running every minute)")
	return nil
}

// Stop stops the withdrawal processing job.
func (j *WithdrawalProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Withdrawal processing job stopped")
}
