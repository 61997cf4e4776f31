package storage

import (
	"database/sql"

	"github.com/google/uuid"

	"soulfood/internal/domain"
)

// OrderRepository persists orders with their line items and the merchant
// status updates.
type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder writes the order header and its line items in one transaction,
// so a failed item insert can never leave a bare header behind.
func (r *OrderRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (user_id, restaurant_id, status, subtotal, delivery_fee, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, order.UserID, order.RestaurantID, order.Status, order.Subtotal, order.DeliveryFee, order.Total).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, order.ID, order.Items[i].MenuItemID, order.Items[i].Quantity, order.Items[i].Price).
			Scan(&order.Items[i].ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT o.id, o.user_id, o.restaurant_id, COALESCE(r.name, ''), o.status,
		       o.subtotal, o.delivery_fee, o.total, o.created_at
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1
	`, orderID).Scan(
		&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
		&order.Status, &order.Subtotal, &order.DeliveryFee, &order.Total, &order.CreatedAt); err != nil {
		return nil, err
	}

	items, err := r.listItems(orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *OrderRepository) ListUserOrders(userID uuid.UUID) ([]domain.Order, error) {
	return r.listOrders(`
		SELECT o.id, o.user_id, o.restaurant_id, COALESCE(r.name, ''), o.status,
		       o.subtotal, o.delivery_fee, o.total, o.created_at
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`, userID)
}

func (r *OrderRepository) ListRestaurantOrders(restaurantID int) ([]domain.Order, error) {
	return r.listOrders(`
		SELECT o.id, o.user_id, o.restaurant_id, COALESCE(r.name, ''), o.status,
		       o.subtotal, o.delivery_fee, o.total, o.created_at
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.restaurant_id = $1
		ORDER BY o.created_at DESC`, restaurantID)
}

// UpdateOrderStatus is guarded on the status the caller read, so two
// merchant actions racing on the same order cannot both win. A lost race
// shows up as zero affected rows.
func (r *OrderRepository) UpdateOrderStatus(orderID int, from, to domain.OrderStatus) (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE orders SET status = $1 WHERE id = $2 AND status = $3
	`, to, orderID, from)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *OrderRepository) listOrders(query string, arg interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
			&order.Status, &order.Subtotal, &order.DeliveryFee, &order.Total, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.listItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// Line items carry their own frozen price; the menu item name is joined live
// for display only.
func (r *OrderRepository) listItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, COALESCE(m.name, ''), oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}
