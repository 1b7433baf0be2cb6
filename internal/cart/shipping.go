package cart

import "github.com/shopspring/decimal"

var (
	FreeShippingThreshold = decimal.NewFromInt(150)
	StandardShipping      = decimal.RequireFromString("9.95")
)

// ShippingCost is free from FreeShippingThreshold upwards, StandardShipping below it.
func ShippingCost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return StandardShipping
}

// Summary is the cart as the storefront renders it.
type Summary struct {
	Items                []CartItem      `json:"items"`
	TotalItems           int             `json:"totalItems"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Shipping             decimal.Decimal `json:"shipping"`
	Total                decimal.Decimal `json:"total"`
	RemainingForFreeShip decimal.Decimal `json:"remainingForFreeShipping"`
	IsEmpty              bool            `json:"isEmpty"`
}

// Summarize computes totals for s. An empty cart has nothing to ship.
func Summarize(s *Store) Summary {
	subtotal := s.TotalPrice()
	shipping := ShippingCost(subtotal)
	if s.IsEmpty() {
		shipping = decimal.Zero
	}
	remaining := FreeShippingThreshold.Sub(subtotal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return Summary{
		Items:                s.Items(),
		TotalItems:           s.TotalItems(),
		Subtotal:             subtotal,
		Shipping:             shipping,
		Total:                subtotal.Add(shipping),
		RemainingForFreeShip: remaining,
		IsEmpty:              s.IsEmpty(),
	}
}
