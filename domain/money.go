package domain

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders amount in the given ISO currency, e.g. "RM1,234.50".
// Unknown currency codes fall back to the plain two-decimal form.
func FormatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// FormatPercent renders a percentage with two decimals, "N/A" when undefined.
func FormatPercent(p *decimal.Decimal) string {
	if p == nil {
		return "N/A"
	}
	return p.StringFixed(2) + "%"
}
