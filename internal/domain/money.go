package domain

import "github.com/shopspring/decimal"

// RoundMoney rounds a currency amount to cents. Intermediate arithmetic is
// kept at full precision; rounding happens once, at the display/persistence
// boundary.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// WholePercent returns round(part/whole*100) as an integer percentage.
// Returns 0 when whole is zero.
func WholePercent(part, whole decimal.Decimal) int64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
