package service

import (
	"github.com/shopspring/decimal"

	"soulfood/internal/domain"
)

// OrderQuote is the priced form of a cart: what the customer pays, and the
// commission the restaurant keeps by not selling through the reference
// platform (informational, charged to no one).
type OrderQuote struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	Total             decimal.Decimal `json:"total"`
	RestaurantSavings decimal.Decimal `json:"restaurant_savings"`
}

// PriceCart totals a cart. The delivery fee passes through to the driver
// untouched and the platform adds nothing on top, so the total is exactly
// subtotal plus delivery fee. Amounts are summed at full precision and
// rounded to cents only in the returned quote.
func PriceCart(cart *domain.Cart) (OrderQuote, error) {
	if cart == nil || cart.Empty() {
		return OrderQuote{}, ErrEmptyCart
	}

	subtotal := cart.Subtotal()
	deliveryFee := cart.CurrentDeliveryFee()

	return OrderQuote{
		Subtotal:          domain.RoundMoney(subtotal),
		DeliveryFee:       domain.RoundMoney(deliveryFee),
		Total:             domain.RoundMoney(subtotal.Add(deliveryFee)),
		RestaurantSavings: domain.RoundMoney(subtotal.Mul(merchantCommissionRate)),
	}, nil
}
