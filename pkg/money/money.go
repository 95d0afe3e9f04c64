// Package money implements the price arithmetic used across the POS:
// two-decimal rounding, IVA decomposition of tax-inclusive prices and
// cash change calculation.
package money

import (
	"math"

	"github.com/pastesytony/pos-api/pkg/apperror"
)

// IVARate is the value-added tax rate embedded in all catalog prices.
const IVARate = 0.16

// LineItem is the minimal shape the arithmetic needs from a cart,
// order or sale line.
type LineItem struct {
	Price    float64
	Quantity int
}

// Breakdown holds the (subtotal, tax, total) triple for a set of items.
// Subtotal is tax-exclusive; Total is the sum of tax-inclusive prices.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// epsilon compensates floating-point representation error before
// rounding (e.g. 1.005 is stored as 1.00499...).
const epsilon = 1e-9

// Round2 rounds to two decimal places, half-up. Idempotent.
func Round2(value float64) float64 {
	return math.Round((value+epsilon)*100) / 100
}

// PriceBreakdown decomposes a list of tax-inclusive line items into
// subtotal, IVA and total. The total is computed first and the subtotal
// derived from it (total / 1.16), so Round2(subtotal+tax) always equals
// the total. Negative prices or quantities are rejected.
func PriceBreakdown(items []LineItem) (Breakdown, error) {
	if len(items) == 0 {
		return Breakdown{}, nil
	}

	var sum float64
	for _, item := range items {
		if item.Price < 0 || item.Quantity < 0 {
			return Breakdown{}, apperror.ErrInvalidLineItem
		}
		sum += item.Price * float64(item.Quantity)
	}

	total := Round2(sum)
	subtotal := Round2(total / (1 + IVARate))
	tax := Round2(total - subtotal)

	return Breakdown{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// Change returns the cash to hand back for a cash payment.
func Change(total, cashReceived float64) float64 {
	return Round2(cashReceived - total)
}
