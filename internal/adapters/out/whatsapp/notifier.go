package whatsapp

import (
	"context"
	"log/slog"

	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"
)

// Notifier delivers order notifications by logging the rendered message and
// its wa.me deep link. Delivery is best effort: the owner taps the link from
// the log stream, nothing is sent over the network.
type Notifier struct {
	renderer Renderer
	logger   *slog.Logger
}

// NewNotifier creates a Notifier that renders messages with renderer and
// writes them to logger.
func NewNotifier(renderer Renderer, logger *slog.Logger) *Notifier {
	return &Notifier{
		renderer: renderer,
		logger:   logger.With("component", "whatsapp"),
	}
}

// Notify renders the notification's order and emits it. Errors are wrapped so
// callers can tell delivery failures from other faults.
func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	message, err := n.renderer.Render(notification.Order)
	if err != nil {
		return errs.NewNotificationDeliveryError(notification.Order.ID(), err)
	}

	n.logger.InfoContext(ctx, "order notification ready",
		"notification_id", notification.ID,
		"order_id", notification.Order.ID(),
		"deep_link", message.DeepLink,
	)
	n.logger.InfoContext(ctx, message.Text)

	return nil
}
