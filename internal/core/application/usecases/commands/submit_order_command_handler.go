package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/model/pricing"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitOrderCommandHandler handles order submission. It is the authoritative
// pricing path: subtotal, delivery fee and total are recomputed here from the
// submitted lines and location; any client-computed totals are ignored, and
// lines matching price-list items are re-priced from the list.
//
// On success the created order is appended to the store and a notification is
// enqueued for the messaging worker. The enqueue is fire-and-forget: a full
// queue is logged and the submission still succeeds.
type SubmitOrderCommandHandler struct {
	orders       ports.OrderRepository
	priceList    ports.PriceListRepository
	queue        ports.NotificationQueue
	tariff       pricing.Tariff
	shopLocation kernel.GeoPoint
	logger       *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
func NewSubmitOrderCommandHandler(
	orders ports.OrderRepository,
	priceList ports.PriceListRepository,
	queue ports.NotificationQueue,
	tariff pricing.Tariff,
	shopLocation kernel.GeoPoint,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		orders:       orders,
		priceList:    priceList,
		queue:        queue,
		tariff:       tariff,
		shopLocation: shopLocation,
		logger:       logger.With("component", "submit_order_handler"),
	}
}

// Handle processes the submission command and returns the created order.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.CustomerPhone(), cmd.DeliveryAddress())
	if err != nil {
		return nil, err
	}

	items, err := h.repriceLines(ctx, cmd.Lines())
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, line := range items {
		subtotal = subtotal.Add(line.Total())
	}

	var distanceKm *float64
	if loc := cmd.Location(); loc != nil {
		d, distErr := h.shopLocation.DistanceKmTo(*loc)
		if distErr != nil {
			return nil, distErr
		}
		distanceKm = &d
	}

	quote := h.tariff.Quote(subtotal, distanceKm)

	id, err := h.orders.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	o, err := order.NewOrder(id, customer, items, cmd.Notes(), quote, cmd.Location(), now)
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = h.queue.Enqueue(ports.Notification{
		ID:         uuid.New(),
		Order:      o,
		EnqueuedAt: now,
	}); err != nil {
		h.logger.WarnContext(ctx, "Notification enqueue failed, order accepted anyway",
			"order_id", o.ID(), "error", err)
	}

	return o, nil
}

// repriceLines converts submitted lines to domain lines, substituting the
// listed name and price for any line whose item id exists in the price list.
// Unknown item ids keep the submitted values.
func (h SubmitOrderCommandHandler) repriceLines(
	ctx context.Context,
	inputs []OrderLineInput,
) ([]order.Line, error) {
	items := make([]order.Line, 0, len(inputs))

	for _, in := range inputs {
		name := in.Name
		unitPrice := in.UnitPrice

		listed, err := h.priceList.Get(ctx, in.ItemID)
		switch {
		case err == nil:
			name = listed.Name()
			unitPrice = listed.Price()
		case errors.Is(err, errs.ErrObjectNotFound):
			// Unlisted item, the submitted values stand.
		default:
			return nil, err
		}

		line, err := order.NewLine(in.ItemID, name, unitPrice, in.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, line)
	}

	return items, nil
}
