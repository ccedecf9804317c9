package jobs

import (
	"context"
	"log/slog"
	"time"

	"kirana/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RetentionJob manages the scheduled purge of stale orders.
// Runs hourly to remove orders untouched for longer than the retention window.
type RetentionJob struct {
	handler   commands.PurgeExpiredOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRetentionJob creates a new job for purging stale orders.
// Uses PurgeExpiredOrdersCommandHandler with the configured retention window.
func NewRetentionJob(
	handler commands.PurgeExpiredOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *RetentionJob {
	return &RetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "retention_job"),
	}
}

// Start begins the retention job to run at the top of every hour.
func (j *RetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeExpiredOrdersCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention job misconfigured", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged stale orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retention job started (running hourly)")
	return nil
}

// Stop stops the retention job.
func (j *RetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Retention job stopped")
}
