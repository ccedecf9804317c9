// Package whatsapp renders order notifications for the shop owner and
// delivers them as a wa.me deep link: a URI that opens WhatsApp pre-filled
// with the order text. Customer data is passed through the privacy helpers
// before rendering.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/privacy"

	"github.com/shopspring/decimal"
)

// Message is a rendered order notification.
type Message struct {
	// Text is the human-readable notification body.
	Text string

	// DeepLink opens WhatsApp with Text pre-filled, addressed to the shop
	// owner.
	DeepLink string
}

// Renderer builds notification messages for a shop.
type Renderer struct {
	shopName  string
	shopPhone string
}

// NewRenderer creates a renderer. shopPhone is the owner's WhatsApp number in
// international digits-only form, e.g. "919963321819".
func NewRenderer(shopName string, shopPhone string) Renderer {
	return Renderer{
		shopName:  shopName,
		shopPhone: shopPhone,
	}
}

// Render produces the notification message and deep link for an order.
func (r Renderer) Render(o *order.Order) (Message, error) {
	if err := o.Validate(); err != nil {
		return Message{}, err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🆕 *NEW ORDER RECEIVED!*\n")
	fmt.Fprintf(&b, "📅 *Date:* %s\n", o.CreatedAt().Format("02/01/2006"))
	fmt.Fprintf(&b, "🆔 *Order #:* %d\n\n", o.ID())

	customer := o.Customer()
	fmt.Fprintf(&b, "👤 *Customer Details:*\n")
	fmt.Fprintf(&b, "• Name: %s\n", privacy.CleanName(customer.Name()))
	fmt.Fprintf(&b, "• Phone: %s\n", privacy.MaskPhone(customer.Phone()))
	fmt.Fprintf(&b, "• Address: %s\n\n", privacy.CleanAddress(customer.Address()))

	if loc := o.Location(); loc != nil {
		fmt.Fprintf(&b, "📍 *Location:* https://www.google.com/maps?q=%g,%g\n\n",
			privacy.ApproximateCoordinate(loc.Latitude()),
			privacy.ApproximateCoordinate(loc.Longitude()))
	}

	fmt.Fprintf(&b, "🛒 *Items:*\n")
	for _, line := range o.Items() {
		fmt.Fprintf(&b, "• %s: %d × ₹%s = ₹%s\n",
			line.Name(), line.Quantity(), money(line.UnitPrice()), money(line.Total()))
	}
	b.WriteString("\n")

	quote := o.Quote()
	fmt.Fprintf(&b, "🚚 *Delivery Information:*\n")
	if quote.IsFree {
		fmt.Fprintf(&b, "✅ Free Delivery\n")
	} else {
		fmt.Fprintf(&b, "💰 Delivery Fee: ₹%s\n", money(quote.Fee))
	}
	fmt.Fprintf(&b, "%s\n\n", quote.Explanation)

	fmt.Fprintf(&b, "💰 *Subtotal:* ₹%s\n", money(o.Subtotal()))
	fmt.Fprintf(&b, "🚚 *Delivery Fee:* ₹%s\n", money(quote.Fee))
	fmt.Fprintf(&b, "💰 *Total Amount:* ₹%s\n\n", money(o.Total()))

	fmt.Fprintf(&b, "🏪 *%s*", r.shopName)
	if o.Notes() != "" {
		fmt.Fprintf(&b, "\n📝 *Notes:* %s", o.Notes())
	}

	text := b.String()

	return Message{
		Text:     text,
		DeepLink: fmt.Sprintf("https://wa.me/%s?text=%s", r.shopPhone, url.QueryEscape(text)),
	}, nil
}

// money formats an amount for display with fixed 2-decimal rounding. Rounding
// happens only here, never inside the arithmetic.
func money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
