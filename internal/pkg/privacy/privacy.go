// Package privacy provides helpers for reducing the sensitivity of customer
// data before it leaves the process, e.g. in rendered notifications. The core
// store accepts raw or pre-sanitized fields interchangeably; applying these
// helpers is optional middleware, not a store invariant.
package privacy

import (
	"math"
	"strings"
	"unicode"
)

// LocationPrecision is the number of decimal places kept when reducing
// coordinate precision. Two decimals is roughly a 1.1 km grid.
const LocationPrecision = 2

// MaskPhone masks the middle digits of a phone number. A ten-digit number
// keeps the first three and last four digits ("987***4321"); anything else is
// reduced to "***" plus its last four digits. Empty input yields
// "Not provided".
func MaskPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return "Not provided"
	}
	if len(digits) == 10 {
		return digits[:3] + "***" + digits[6:]
	}
	if len(digits) <= 4 {
		return "***" + digits
	}
	return "***" + digits[len(digits)-4:]
}

// ApproximateCoordinate rounds a latitude or longitude to LocationPrecision
// decimal places.
func ApproximateCoordinate(v float64) float64 {
	factor := math.Pow(10, LocationPrecision)
	return math.Round(v*factor) / factor
}

// CleanName trims a customer name, falling back to "Anonymous" when blank.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Anonymous"
	}
	return name
}

// CleanAddress trims a delivery address, falling back to "Not provided" when
// blank.
func CleanAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return "Not provided"
	}
	return address
}
