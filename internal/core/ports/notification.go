package ports

import (
	"time"

	"kirana/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Notification is the unit of work handed from order submission to the
// notification worker. The order pointer refers to the stored aggregate; the
// worker only reads it.
type Notification struct {
	// ID correlates queue, worker and delivery log lines.
	ID uuid.UUID

	// Order is the submitted order to announce.
	Order *order.Order

	// EnqueuedAt is when submission handed the notification off.
	EnqueuedAt time.Time
}

// NotificationQueue decouples order submission from notification delivery.
// Enqueue must never block: a slow or failing messaging channel cannot be
// allowed to delay or fail submission. Implementations drop on overflow
// (at-most-once delivery) and report the drop through the returned error,
// which callers log and otherwise ignore.
type NotificationQueue interface {
	Enqueue(n Notification) error
}
