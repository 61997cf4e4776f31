package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one menu item in a basket. Name and price are copied from the
// menu item when the line is created, so later menu edits do not change what
// the customer sees in the basket.
type CartLine struct {
	MenuItemID int             `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

// Cart is one session's basket. Every line belongs to the restaurant the
// cart is bound to; an empty cart is bound to no restaurant.
type Cart struct {
	UserID         string          `json:"user_id"`
	RestaurantID   int             `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	Lines          []CartLine      `json:"lines"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Add puts one unit of item into the cart, incrementing the existing line if
// the item is already present. Returns false and leaves the cart untouched
// when the cart is bound to a different restaurant; the caller must then ask
// the customer to confirm a reset.
func (c *Cart) Add(item MenuItem, rest Restaurant) bool {
	if !c.Empty() && c.RestaurantID != rest.ID {
		return false
	}
	if c.Empty() {
		c.bind(rest)
	}
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == item.ID {
			c.Lines[i].Quantity++
			return true
		}
	}
	c.Lines = append(c.Lines, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
	return true
}

// ResetWith discards the current basket and starts a new one holding a single
// unit of item. Callers obtain the customer's confirmation before calling
// this; Add never destroys a basket on its own.
func (c *Cart) ResetWith(item MenuItem, rest Restaurant) {
	c.bind(rest)
	c.Lines = []CartLine{{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	}}
}

// Remove takes one unit of the identified item out of the cart, dropping the
// line when its quantity reaches zero. Unknown IDs are a no-op.
func (c *Cart) Remove(menuItemID int) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID != menuItemID {
			continue
		}
		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--
		} else {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// Subtotal sums unit price times quantity over all lines, at full precision.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.Lines {
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

// CurrentDeliveryFee is the bound restaurant's delivery fee, or zero for an
// empty cart.
func (c *Cart) CurrentDeliveryFee() decimal.Decimal {
	if c.Empty() {
		return decimal.Zero
	}
	return c.DeliveryFee
}

func (c *Cart) bind(rest Restaurant) {
	c.RestaurantID = rest.ID
	c.RestaurantName = rest.Name
	c.DeliveryFee = rest.DeliveryFee
}
