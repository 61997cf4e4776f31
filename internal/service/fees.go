package service

import (
	"github.com/shopspring/decimal"

	"soulfood/internal/domain"
)

// Reference platform fee model: typical large-platform delivery fees in
// Toronto, 2024 figures. Adjusting the constants does not change the
// algorithm.
var (
	refServiceFeeRate    = decimal.NewFromFloat(0.15)
	refRegulatoryFeeRate = decimal.NewFromFloat(0.02)
	refSmallOrderFee     = decimal.NewFromFloat(3.99)
	refSmallOrderCutoff  = decimal.NewFromInt(15)

	// Commission a restaurant would surrender on the reference platform.
	// Display only, charged to no one.
	merchantCommissionRate = decimal.NewFromFloat(0.30)
)

// FeeComparison contrasts what a basket costs here against the reference
// platform's fee structure. All amounts are rounded to cents for display.
type FeeComparison struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	ServiceFee      decimal.Decimal `json:"service_fee"`
	SmallOrderFee   decimal.Decimal `json:"small_order_fee"`
	RegulatoryFee   decimal.Decimal `json:"regulatory_fee"`
	ReferenceFees   decimal.Decimal `json:"reference_fees"`
	ReferenceTotal  decimal.Decimal `json:"reference_total"`
	PlatformTotal   decimal.Decimal `json:"platform_total"`
	Savings         decimal.Decimal `json:"savings"`
	SavingsPercent  int64           `json:"savings_percent"`
	MerchantSavings decimal.Decimal `json:"merchant_savings"`
}

// CompareFees prices a subtotal under the reference platform's fee model and
// under this platform, which charges nothing. Pure computation, no I/O.
// A zero subtotal yields zero fees and a zero savings percentage.
func CompareFees(subtotal decimal.Decimal) FeeComparison {
	serviceFee := subtotal.Mul(refServiceFeeRate)
	regulatoryFee := subtotal.Mul(refRegulatoryFeeRate)

	smallOrderFee := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(refSmallOrderCutoff) {
		smallOrderFee = refSmallOrderFee
	}

	totalFees := serviceFee.Add(smallOrderFee).Add(regulatoryFee)
	referenceTotal := subtotal.Add(totalFees)

	return FeeComparison{
		Subtotal:        domain.RoundMoney(subtotal),
		ServiceFee:      domain.RoundMoney(serviceFee),
		SmallOrderFee:   domain.RoundMoney(smallOrderFee),
		RegulatoryFee:   domain.RoundMoney(regulatoryFee),
		ReferenceFees:   domain.RoundMoney(totalFees),
		ReferenceTotal:  domain.RoundMoney(referenceTotal),
		PlatformTotal:   domain.RoundMoney(subtotal),
		Savings:         domain.RoundMoney(totalFees),
		SavingsPercent:  domain.WholePercent(totalFees, referenceTotal),
		MerchantSavings: domain.RoundMoney(subtotal.Mul(merchantCommissionRate)),
	}
}
