package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tariff holds the tunable thresholds of the delivery-fee policy. A deployment
// can adjust these without code change; DefaultTariff returns the values the
// shop currently runs with.
type Tariff struct {
	// FreeTierSubtotal is the minimum subtotal for free delivery within
	// FreeTierRadiusKm of the shop.
	FreeTierSubtotal decimal.Decimal

	// FreeTierRadiusKm is the maximum distance for the FreeTierSubtotal tier.
	FreeTierRadiusKm float64

	// NearTierSubtotal is the minimum subtotal for free delivery within
	// NearTierRadiusKm of the shop.
	NearTierSubtotal decimal.Decimal

	// NearTierRadiusKm is the maximum distance for the NearTierSubtotal tier.
	NearTierRadiusKm float64

	// BaseFee is charged whenever no free tier matches, including when the
	// customer location was not captured.
	BaseFee decimal.Decimal
}

// DefaultTariff returns the standard policy: free delivery within 3 km for
// subtotals of at least 1000, free delivery within 1 km for subtotals of at
// least 500, and a base fee of 50 otherwise.
func DefaultTariff() Tariff {
	return Tariff{
		FreeTierSubtotal: decimal.NewFromInt(1000),
		FreeTierRadiusKm: 3,
		NearTierSubtotal: decimal.NewFromInt(500),
		NearTierRadiusKm: 1,
		BaseFee:          decimal.NewFromInt(50),
	}
}

// DeliveryQuote is the outcome of evaluating the tariff for a cart.
// It is derived state: recomputed on every cart change and persisted only as
// part of the Order it was computed for.
type DeliveryQuote struct {
	// Fee is the delivery fee to charge. Zero when IsFree.
	Fee decimal.Decimal

	// IsFree reports whether a free-delivery tier matched.
	IsFree bool

	// DistanceKm is the shop-to-customer distance, nil when the location was
	// not captured.
	DistanceKm *float64

	// Explanation is a human-readable description of the decision, shown in
	// order summaries and notifications.
	Explanation string
}

// Quote evaluates the tiered delivery policy for a cart subtotal and an
// optional shop-to-customer distance. Tiers are evaluated top-down, first
// match wins:
//
//  1. distance known, subtotal >= FreeTierSubtotal, distance <= FreeTierRadiusKm: free
//  2. distance known, subtotal >= NearTierSubtotal, distance <= NearTierRadiusKm: free
//  3. distance unknown: BaseFee
//  4. otherwise: BaseFee
//
// Pass nil distanceKm when the customer location was not captured. The policy
// is deterministic, so a client-side preview and the server evaluation agree
// whenever they are given identical inputs.
func (t Tariff) Quote(subtotal decimal.Decimal, distanceKm *float64) DeliveryQuote {
	if distanceKm == nil {
		return DeliveryQuote{
			Fee:         t.BaseFee,
			IsFree:      false,
			Explanation: "Location not captured - delivery fee applies",
		}
	}

	d := *distanceKm

	if subtotal.GreaterThanOrEqual(t.FreeTierSubtotal) && d <= t.FreeTierRadiusKm {
		return DeliveryQuote{
			Fee:         decimal.Zero,
			IsFree:      true,
			DistanceKm:  distanceKm,
			Explanation: fmt.Sprintf("Free delivery within %gkm (%.1fkm away)", t.FreeTierRadiusKm, d),
		}
	}

	if subtotal.GreaterThanOrEqual(t.NearTierSubtotal) && d <= t.NearTierRadiusKm {
		return DeliveryQuote{
			Fee:         decimal.Zero,
			IsFree:      true,
			DistanceKm:  distanceKm,
			Explanation: fmt.Sprintf("Free delivery within %gkm (%.1fkm away)", t.NearTierRadiusKm, d),
		}
	}

	return DeliveryQuote{
		Fee:         t.BaseFee,
		IsFree:      false,
		DistanceKm:  distanceKm,
		Explanation: fmt.Sprintf("Delivery fee applies (%.1fkm away)", d),
	}
}
