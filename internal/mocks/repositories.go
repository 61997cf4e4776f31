package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"soulfood/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CatalogRepository) ListActiveRestaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return _m.Called(rest).Error(0)
}

func (_m *CatalogRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return _m.Called(rest).Error(0)
}

func (_m *CatalogRepository) SetRestaurantActive(id int, active bool) error {
	return _m.Called(id, active).Error(0)
}

func (_m *CatalogRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	ret := _m.Called(restaurantID)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	ret := _m.Called(restaurantID, itemID)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) CreateMenuItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *CatalogRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *CatalogRepository) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	ret := _m.Called(restaurantID, itemID)
	return ret.Get(0).(int64), ret.Error(1)
}

type AccountRepository struct {
	mock.Mock
}

func NewAccountRepository(t testingT) *AccountRepository {
	m := &AccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AccountRepository) GetAccount(id uuid.UUID) (*domain.Account, error) {
	ret := _m.Called(id)
	var r0 *domain.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Account)
	}
	return r0, ret.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderRepository) CreateOrder(order *domain.Order) error {
	return _m.Called(order).Error(0)
}

func (_m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	ret := _m.Called(orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListUserOrders(userID uuid.UUID) ([]domain.Order, error) {
	ret := _m.Called(userID)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListRestaurantOrders(restaurantID int) ([]domain.Order, error) {
	ret := _m.Called(restaurantID)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(orderID int, from, to domain.OrderStatus) (int64, error) {
	ret := _m.Called(orderID, from, to)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return _m.Called(orderID, qr).Error(0)
}

func (_m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}
