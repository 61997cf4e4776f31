package service

import "errors"

var (
	// ErrEmptyCart rejects pricing or placement of a basket with no lines.
	ErrEmptyCart = errors.New("cart has no items")
	// ErrRestaurantConflict means the cart is bound to a different restaurant;
	// the caller must confirm a reset before the add can proceed.
	ErrRestaurantConflict = errors.New("cart holds items from another restaurant")
	// ErrInvalidTransition rejects an order status change the lifecycle does
	// not allow from the order's current state.
	ErrInvalidTransition = errors.New("order status transition not allowed")
	// ErrMerchantAccount rejects order placement by a merchant profile.
	ErrMerchantAccount = errors.New("merchant accounts cannot place orders")
)
