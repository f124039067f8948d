package cart

import (
	"github.com/shopspring/decimal"

	"elitcards/pkg/shop"
)

// Price returns the product price as an exact decimal.
func Price(p shop.Product) decimal.Decimal {
	return decimal.NewFromFloat(p.Price)
}

// FormatUSD renders amount as "$" followed by two decimals, rounding half up.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// ConvertToLocal multiplies usd by rate and renders two decimals, rounding
// half up.
func ConvertToLocal(usd decimal.Decimal, rate float64) string {
	return usd.Mul(decimal.NewFromFloat(rate)).StringFixed(2)
}
