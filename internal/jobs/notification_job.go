package jobs

import (
	"context"
	"log/slog"

	"kirana/internal/core/ports"
)

// NotificationSource hands out queued order notifications. Satisfied by the
// in-memory queue adapter.
type NotificationSource interface {
	Dequeue() <-chan ports.Notification
}

// Notifier delivers a single rendered notification.
type Notifier interface {
	Notify(ctx context.Context, notification ports.Notification) error
}

// NotificationJob consumes queued order notifications and hands them to the
// notifier. Delivery is at most once: a failed delivery is logged and the
// notification is dropped, never retried.
type NotificationJob struct {
	source   NotificationSource
	notifier Notifier
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewNotificationJob creates a worker draining source into notifier.
func NewNotificationJob(source NotificationSource, notifier Notifier, logger *slog.Logger) *NotificationJob {
	return &NotificationJob{
		source:   source,
		notifier: notifier,
		logger:   logger.With("component", "notification_job"),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the consumer goroutine.
func (j *NotificationJob) Start() error {
	go j.run()
	j.logger.InfoContext(context.Background(), "Notification job started")
	return nil
}

// Stop signals the consumer to exit and waits for it to finish the
// notification currently in flight. Notifications still queued stay queued.
func (j *NotificationJob) Stop() {
	close(j.stop)
	<-j.done
	j.logger.InfoContext(context.Background(), "Notification job stopped")
}

func (j *NotificationJob) run() {
	defer close(j.done)

	for {
		select {
		case <-j.stop:
			return
		case notification, ok := <-j.source.Dequeue():
			if !ok {
				return
			}

			ctx := context.Background()
			if err := j.notifier.Notify(ctx, notification); err != nil {
				j.logger.ErrorContext(ctx, "Notification delivery failed",
					"notification_id", notification.ID,
					"order_id", notification.Order.ID(),
					"error", err,
				)
			}
		}
	}
}
