package storage

import (
	"database/sql"

	"github.com/google/uuid"

	"soulfood/internal/domain"
)

// PostgresRepository backs the catalog (restaurants, menu items) and the
// role-tagged accounts resolved at sign-in.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// Catalog reads apply the storefront defaults for optional columns: rating 0,
// delivery time "25-35 min", pickup on, delivery off.
const restaurantColumns = `
	id, owner_id, name, COALESCE(category, ''), COALESCE(description, ''),
	COALESCE(image_url, ''), COALESCE(rating, 0), COALESCE(delivery_time, '25-35 min'),
	COALESCE(delivery_fee, 0), COALESCE(offers_pickup, true), COALESCE(offers_delivery, false),
	is_active, created_at`

func (r *PostgresRepository) ListActiveRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT` + restaurantColumns + `
		FROM restaurants
		WHERE is_active = true
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, *rest)
	}

	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	row := r.DB.QueryRow(`
		SELECT`+restaurantColumns+`
		FROM restaurants
		WHERE id = $1`, id)
	return scanRestaurant(row)
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (owner_id, name, category, description, image_url, delivery_time, delivery_fee, offers_pickup, offers_delivery, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
		RETURNING id, created_at`,
		rest.OwnerID, rest.Name, rest.Category, rest.Description, rest.ImageURL,
		rest.DeliveryTime, rest.DeliveryFee, rest.OffersPickup, rest.OffersDelivery,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	_, err := r.DB.Exec(`
		UPDATE restaurants
		SET name = $1, category = $2, description = $3, image_url = $4,
		    delivery_time = $5, delivery_fee = $6, offers_pickup = $7, offers_delivery = $8
		WHERE id = $9`,
		rest.Name, rest.Category, rest.Description, rest.ImageURL,
		rest.DeliveryTime, rest.DeliveryFee, rest.OffersPickup, rest.OffersDelivery, rest.ID)
	return err
}

func (r *PostgresRepository) SetRestaurantActive(id int, active bool) error {
	_, err := r.DB.Exec(`UPDATE restaurants SET is_active = $1 WHERE id = $2`, active, id)
	return err
}

func (r *PostgresRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *PostgresRepository) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, created_at
		FROM menu_items
		WHERE restaurant_id = $1 AND id = $2`, restaurantID, itemID).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Description, item.Price,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	_, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, description = $2, price = $3
		WHERE restaurant_id = $4 AND id = $5`,
		item.Name, item.Description, item.Price, item.RestaurantID, item.ID)
	return err
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM menu_items WHERE restaurant_id = $1 AND id = $2`, restaurantID, itemID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) GetAccount(id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	err := r.DB.QueryRow(`
		SELECT id, name, email, role, created_at
		FROM accounts
		WHERE id = $1`, id).
		Scan(&account.ID, &account.Name, &account.Email, &account.Role, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(
		&rest.ID, &rest.OwnerID, &rest.Name, &rest.Category, &rest.Description,
		&rest.ImageURL, &rest.Rating, &rest.DeliveryTime, &rest.DeliveryFee,
		&rest.OffersPickup, &rest.OffersDelivery, &rest.IsActive, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
