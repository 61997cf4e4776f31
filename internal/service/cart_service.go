package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"soulfood/internal/domain"
	"soulfood/internal/storage"
)

// CartService keeps one basket per user session in the cart store. Callers
// serialize mutations for a given user; the store holds no cross-session
// shared state.
type CartService struct {
	store   CartStore
	catalog CatalogRepository
	sfg     singleflight.Group // Prevents duplicate loads of the same cart
}

func NewCartService(store CartStore, catalog CatalogRepository) *CartService {
	return &CartService{store: store, catalog: catalog}
}

func (s *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		cart, err := s.store.Get(ctx, userID)
		if errors.Is(err, storage.ErrCartNotFound) {
			return &domain.Cart{UserID: userID, UpdatedAt: time.Now()}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load cart: %w", err)
		}
		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// AddItem puts one unit of the menu item into the user's basket. Returns
// ErrRestaurantConflict when the basket is bound to another restaurant; the
// basket is left untouched and the caller decides whether to ConfirmReset.
func (s *CartService) AddItem(ctx context.Context, userID string, restaurantID, menuItemID int) (*domain.Cart, error) {
	cart, item, rest, err := s.load(ctx, userID, restaurantID, menuItemID)
	if err != nil {
		return nil, err
	}

	if !cart.Add(*item, *rest) {
		return nil, ErrRestaurantConflict
	}

	return s.persist(ctx, userID, cart)
}

// ConfirmReset discards the user's basket and starts a new one holding the
// given item. This is the second phase of a cross-restaurant add; the UI owns
// the actual prompt.
func (s *CartService) ConfirmReset(ctx context.Context, userID string, restaurantID, menuItemID int) (*domain.Cart, error) {
	cart, item, rest, err := s.load(ctx, userID, restaurantID, menuItemID)
	if err != nil {
		return nil, err
	}

	cart.ResetWith(*item, *rest)
	return s.persist(ctx, userID, cart)
}

// RemoveItem takes one unit of the item out of the basket. Absent IDs are a
// no-op; the UI only offers removal for lines it is showing.
func (s *CartService) RemoveItem(ctx context.Context, userID string, menuItemID int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Remove(menuItemID)
	if cart.Empty() {
		if err := s.store.Delete(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to clear cart: %w", err)
		}
		cart.UpdatedAt = time.Now()
		return cart, nil
	}

	return s.persist(ctx, userID, cart)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartService) load(ctx context.Context, userID string, restaurantID, menuItemID int) (*domain.Cart, *domain.MenuItem, *domain.Restaurant, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	rest, err := s.catalog.GetRestaurant(restaurantID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load restaurant: %w", err)
	}

	item, err := s.catalog.GetMenuItem(restaurantID, menuItemID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	return cart, item, rest, nil
}

func (s *CartService) persist(ctx context.Context, userID string, cart *domain.Cart) (*domain.Cart, error) {
	cart.UserID = userID
	cart.UpdatedAt = time.Now()
	if err := s.store.Set(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

var _ CartServiceInterface = (*CartService)(nil)
