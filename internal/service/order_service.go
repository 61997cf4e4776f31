package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"soulfood/internal/domain"
)

// OrderService owns order placement and the merchant-driven status
// lifecycle. Persistence failures pass through to the caller untouched; there
// are no retries here.
type OrderService struct {
	orders    OrderRepository
	accounts  AccountRepository
	publisher OrderEventPublisher
}

func NewOrderService(orders OrderRepository, accounts AccountRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		accounts:  accounts,
		publisher: publisher,
	}
}

// Place prices the cart and writes the order with its line items as one
// transaction. The caller owns the cart and clears it after a successful
// placement. Merchant accounts are refused.
func (s *OrderService) Place(ctx context.Context, userID uuid.UUID, cart *domain.Cart) (*domain.Order, error) {
	account, err := s.accounts.GetAccount(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if account.Role == domain.RoleMerchant {
		return nil, ErrMerchantAccount
	}

	quote, err := PriceCart(cart)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:         userID,
		RestaurantID:   cart.RestaurantID,
		RestaurantName: cart.RestaurantName,
		Status:         domain.OrderStatusPending,
		Subtotal:       quote.Subtotal,
		DeliveryFee:    quote.DeliveryFee,
		Total:          quote.Total,
	}
	for _, line := range cart.Lines {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      domain.RoundMoney(line.UnitPrice),
		})
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status.String(),
		Total:        order.Total,
		FeesSaved:    CompareFees(order.Subtotal).Savings,
		Timestamp:    time.Now(),
	})

	log.Printf("Order %d placed for restaurant %d, total %s", order.ID, order.RestaurantID, order.Total)
	return order, nil
}

// UpdateStatus applies one merchant action to the order lifecycle. The
// database update is guarded on the status the order was read at, so a
// concurrent merchant action surfaces as an invalid transition rather than a
// silent overwrite.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, ErrInvalidTransition
	}

	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	affected, err := s.orders.UpdateOrderStatus(orderID, order.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}
	order.Status = next

	if next == domain.OrderStatusReady {
		s.attachPickupCode(order)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventStatusChanged,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Status:       next.String(),
		Total:        order.Total,
		Timestamp:    time.Now(),
	})

	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.orders.GetOrder(orderID)
}

func (s *OrderService) ListForUser(userID uuid.UUID) ([]domain.Order, error) {
	return s.orders.ListUserOrders(userID)
}

func (s *OrderService) ListForRestaurant(restaurantID int) ([]domain.Order, error) {
	return s.orders.ListRestaurantOrders(restaurantID)
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	return s.orders.GetQRCode(orderID)
}

// attachPickupCode stores a QR the customer shows at the counter. Failure to
// generate it never blocks the transition.
func (s *OrderService) attachPickupCode(order *domain.Order) {
	qr, err := qrcode.Encode(PickupLink(order.ID), qrcode.Medium, 256)
	if err != nil {
		log.Printf("Error generating pickup code for order %d: %v", order.ID, err)
		return
	}
	if err := s.orders.SaveQRCode(order.ID, qr); err != nil {
		log.Printf("Error saving pickup code for order %d: %v", order.ID, err)
	}
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Error publishing order event: %v", err)
	}
}

func PickupLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d", orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
