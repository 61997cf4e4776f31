package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"soulfood/internal/domain"
)

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CatalogServiceInterface) ListRestaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) GetRestaurant(id int) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) CreateRestaurant(rest *domain.Restaurant) error {
	return _m.Called(rest).Error(0)
}

func (_m *CatalogServiceInterface) UpdateRestaurant(rest *domain.Restaurant) error {
	return _m.Called(rest).Error(0)
}

func (_m *CatalogServiceInterface) SetRestaurantActive(id int, active bool) error {
	return _m.Called(id, active).Error(0)
}

func (_m *CatalogServiceInterface) CreateMenuItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *CatalogServiceInterface) UpdateMenuItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *CatalogServiceInterface) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	ret := _m.Called(restaurantID, itemID)
	return ret.Get(0).(int64), ret.Error(1)
}

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t testingT) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CartServiceInterface) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) AddItem(ctx context.Context, userID string, restaurantID, menuItemID int) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID, restaurantID, menuItemID)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) ConfirmReset(ctx context.Context, userID string, restaurantID, menuItemID int) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID, restaurantID, menuItemID)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) RemoveItem(ctx context.Context, userID string, menuItemID int) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID, menuItemID)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) Clear(ctx context.Context, userID string) error {
	return _m.Called(ctx, userID).Error(0)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderServiceInterface) Place(ctx context.Context, userID uuid.UUID, cart *domain.Cart) (*domain.Order, error) {
	ret := _m.Called(ctx, userID, cart)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) UpdateStatus(ctx context.Context, orderID int, next domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, next)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(orderID int) (*domain.Order, error) {
	ret := _m.Called(orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ListForUser(userID uuid.UUID) ([]domain.Order, error) {
	ret := _m.Called(userID)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ListForRestaurant(restaurantID int) ([]domain.Order, error) {
	ret := _m.Called(restaurantID)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRCode(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type StatsServiceInterface struct {
	mock.Mock
}

func NewStatsServiceInterface(t testingT) *StatsServiceInterface {
	m := &StatsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StatsServiceInterface) Today(ctx context.Context, restaurantID int) (*domain.RestaurantStats, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *domain.RestaurantStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RestaurantStats)
	}
	return r0, ret.Error(1)
}
