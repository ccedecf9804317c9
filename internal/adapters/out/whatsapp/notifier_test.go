package whatsapp

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/model/pricing"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Notify(t *testing.T) {
	quote := pricing.DefaultTariff().Quote(decimal.NewFromInt(150), nil)
	o := makeOrder(t, quote, nil)

	notifier := NewNotifier(
		NewRenderer("Kirana Store", "919963321819"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	err := notifier.Notify(context.Background(), ports.Notification{
		ID:         uuid.New(),
		Order:      o,
		EnqueuedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestNotifier_Notify_RenderFailure(t *testing.T) {
	notifier := NewNotifier(
		NewRenderer("Kirana Store", "919963321819"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	err := notifier.Notify(context.Background(), ports.Notification{
		ID:    uuid.New(),
		Order: &order.Order{},
	})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotificationDelivery)
}
