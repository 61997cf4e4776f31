package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"soulfood/internal/domain"
)

type CartStore struct {
	mock.Mock
}

func NewCartStore(t testingT) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CartStore) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	ret := _m.Called(ctx, userID)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartStore) Set(ctx context.Context, userID string, cart *domain.Cart) error {
	return _m.Called(ctx, userID, cart).Error(0)
}

func (_m *CartStore) Delete(ctx context.Context, userID string) error {
	return _m.Called(ctx, userID).Error(0)
}

type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t testingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}

type StatsStore struct {
	mock.Mock
}

func NewStatsStore(t testingT) *StatsStore {
	m := &StatsStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StatsStore) RecordOrder(ctx context.Context, restaurantID int, day string, total, feesSaved decimal.Decimal) error {
	return _m.Called(ctx, restaurantID, day, total, feesSaved).Error(0)
}

func (_m *StatsStore) GetDailyStats(ctx context.Context, restaurantID int, day string) (*domain.RestaurantStats, error) {
	ret := _m.Called(ctx, restaurantID, day)
	var r0 *domain.RestaurantStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RestaurantStats)
	}
	return r0, ret.Error(1)
}
