package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"soulfood/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompareFees_TwentyDollarOrder(t *testing.T) {
	cmp := service.CompareFees(dec("20.00"))

	assert.True(t, cmp.ServiceFee.Equal(dec("3.00")), "service fee %s", cmp.ServiceFee)
	assert.True(t, cmp.SmallOrderFee.IsZero())
	assert.True(t, cmp.RegulatoryFee.Equal(dec("0.40")), "regulatory fee %s", cmp.RegulatoryFee)
	assert.True(t, cmp.ReferenceFees.Equal(dec("3.40")))
	assert.True(t, cmp.ReferenceTotal.Equal(dec("23.40")))
	assert.True(t, cmp.PlatformTotal.Equal(dec("20.00")))
	assert.True(t, cmp.Savings.Equal(dec("3.40")))
	assert.Equal(t, int64(15), cmp.SavingsPercent)
	assert.True(t, cmp.MerchantSavings.Equal(dec("6.00")))
}

func TestCompareFees_SmallOrderFeeBoundary(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		fee      string
	}{
		{"just_below_cutoff", "14.99", "3.99"},
		{"exactly_at_cutoff", "15.00", "0"},
		{"above_cutoff", "15.01", "0"},
		{"tiny_order", "0.01", "3.99"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cmp := service.CompareFees(dec(testCase.subtotal))
			assert.True(t, cmp.SmallOrderFee.Equal(dec(testCase.fee)),
				"small order fee %s", cmp.SmallOrderFee)
		})
	}
}

func TestCompareFees_ZeroSubtotal(t *testing.T) {
	cmp := service.CompareFees(decimal.Zero)

	assert.True(t, cmp.ServiceFee.IsZero())
	assert.True(t, cmp.SmallOrderFee.IsZero())
	assert.True(t, cmp.RegulatoryFee.IsZero())
	assert.True(t, cmp.ReferenceTotal.IsZero())
	assert.True(t, cmp.Savings.IsZero())
	assert.Equal(t, int64(0), cmp.SavingsPercent)
}

func TestCompareFees_ReferenceAlwaysCostsMore(t *testing.T) {
	for _, subtotal := range []string{"0", "0.01", "5.37", "14.99", "15.00", "29.95", "100.00", "1234.56"} {
		cmp := service.CompareFees(dec(subtotal))

		assert.True(t, cmp.ReferenceTotal.GreaterThanOrEqual(cmp.Subtotal),
			"subtotal %s: reference total %s below subtotal", subtotal, cmp.ReferenceTotal)
		assert.True(t, cmp.Savings.Equal(cmp.ReferenceTotal.Sub(cmp.Subtotal)),
			"subtotal %s: savings mismatch", subtotal)
	}
}
