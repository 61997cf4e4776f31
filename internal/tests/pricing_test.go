package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soulfood/internal/domain"
	"soulfood/internal/service"
)

func twoItemCart() *domain.Cart {
	return &domain.Cart{
		UserID:         "u1",
		RestaurantID:   1,
		RestaurantName: "Resto",
		DeliveryFee:    dec("2.99"),
		Lines: []domain.CartLine{
			{MenuItemID: 10, Name: "Burger", UnitPrice: dec("10.00"), Quantity: 2},
			{MenuItemID: 11, Name: "Fries", UnitPrice: dec("5.50"), Quantity: 1},
		},
	}
}

func TestPriceCart_TwoItemCart(t *testing.T) {
	quote, err := service.PriceCart(twoItemCart())

	assert.NoError(t, err)
	assert.True(t, quote.Subtotal.Equal(dec("25.50")), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.DeliveryFee.Equal(dec("2.99")))
	assert.True(t, quote.Total.Equal(dec("28.49")), "total %s", quote.Total)
	assert.True(t, quote.RestaurantSavings.Equal(dec("7.65")), "savings %s", quote.RestaurantSavings)
}

func TestPriceCart_EmptyCart(t *testing.T) {
	_, err := service.PriceCart(&domain.Cart{})
	assert.ErrorIs(t, err, service.ErrEmptyCart)

	_, err = service.PriceCart(nil)
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestPriceCart_Idempotent(t *testing.T) {
	cart := twoItemCart()

	first, err := service.PriceCart(cart)
	assert.NoError(t, err)
	second, err := service.PriceCart(cart)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPriceCart_TotalIsExactlySubtotalPlusDelivery(t *testing.T) {
	cart := &domain.Cart{
		RestaurantID: 1,
		DeliveryFee:  dec("3.49"),
		Lines: []domain.CartLine{
			{MenuItemID: 1, UnitPrice: dec("0.10"), Quantity: 3},
			{MenuItemID: 2, UnitPrice: dec("1.05"), Quantity: 7},
		},
	}

	quote, err := service.PriceCart(cart)

	assert.NoError(t, err)
	assert.True(t, quote.Total.Equal(quote.Subtotal.Add(quote.DeliveryFee)))
}
