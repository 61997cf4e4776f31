package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"soulfood/internal/domain"
)

type CatalogRepository interface {
	ListActiveRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	CreateRestaurant(rest *domain.Restaurant) error
	UpdateRestaurant(rest *domain.Restaurant) error
	SetRestaurantActive(id int, active bool) error
	ListMenu(restaurantID int) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error)
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID int) (int64, error)
}

type AccountRepository interface {
	GetAccount(id uuid.UUID) (*domain.Account, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListUserOrders(userID uuid.UUID) ([]domain.Order, error)
	ListRestaurantOrders(restaurantID int) ([]domain.Order, error)
	UpdateOrderStatus(orderID int, from, to domain.OrderStatus) (int64, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CartStore interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Set(ctx context.Context, userID string, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type StatsStore interface {
	RecordOrder(ctx context.Context, restaurantID int, day string, total, feesSaved decimal.Decimal) error
	GetDailyStats(ctx context.Context, restaurantID int, day string) (*domain.RestaurantStats, error)
}

type CatalogServiceInterface interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	CreateRestaurant(rest *domain.Restaurant) error
	UpdateRestaurant(rest *domain.Restaurant) error
	SetRestaurantActive(id int, active bool) error
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID int) (int64, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, restaurantID, menuItemID int) (*domain.Cart, error)
	ConfirmReset(ctx context.Context, userID string, restaurantID, menuItemID int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID string, menuItemID int) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, userID uuid.UUID, cart *domain.Cart) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, next domain.OrderStatus) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	ListForUser(userID uuid.UUID) ([]domain.Order, error)
	ListForRestaurant(restaurantID int) ([]domain.Order, error)
	QRCode(orderID int) ([]byte, error)
}

type StatsServiceInterface interface {
	Today(ctx context.Context, restaurantID int) (*domain.RestaurantStats, error)
}
