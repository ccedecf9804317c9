// Package jobs provides background tasks for the ordering system.
//
// # Available Jobs
//
// 1. NotificationJob - Drains the in-memory notification queue and hands each
// order notification to the notifier, at most once per order.
// 2. RetentionJob - Runs hourly via github.com/robfig/cron/v3 to purge orders
// untouched for longer than the retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(queue, notifier, purgeHandler, retention, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Notification delivery failures are logged and the notification is dropped
// - Retention failures are logged; the next hourly run retries naturally
// - Failed job starts will stop any already running jobs
package jobs
