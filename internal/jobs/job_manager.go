package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"kirana/internal/core/application/usecases/commands"
)

// JobManager coordinates all background jobs in the application.
// Provides a unified interface to start and stop them.
type JobManager struct {
	notificationJob *NotificationJob
	retentionJob    *RetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the notification source, the notifier and the purge handler as
// dependencies to wire up job execution.
func NewJobManager(
	source NotificationSource,
	notifier Notifier,
	purgeHandler commands.PurgeExpiredOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationJob: NewNotificationJob(source, notifier, logger),
		retentionJob:    NewRetentionJob(purgeHandler, retention, logger),
	}
}

// StartAll starts all background jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification job: %w", err)
	}

	if err := jm.retentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.notificationJob.Stop()
		return fmt.Errorf("failed to start retention job: %w", err)
	}

	return nil
}

// StopAll stops all background jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.retentionJob.Stop()
	jm.notificationJob.Stop()
}
