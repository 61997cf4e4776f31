package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
)

// Account is the resolved profile handed over by the auth layer. The role is
// fixed at sign-up; merchants own restaurants and cannot place orders.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Restaurant struct {
	ID             int             `json:"id"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	Rating         float64         `json:"rating"`
	DeliveryTime   string          `json:"delivery_time"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	OffersPickup   bool            `json:"offers_pickup"`
	OffersDelivery bool            `json:"offers_delivery"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	Menu           []MenuItem      `json:"menu,omitempty"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RestaurantStats is one day of order counters for the merchant dashboard.
type RestaurantStats struct {
	RestaurantID int             `json:"restaurant_id"`
	Day          string          `json:"day"`
	Orders       int64           `json:"orders"`
	Revenue      decimal.Decimal `json:"revenue"`
	FeesSaved    decimal.Decimal `json:"fees_saved"`
}
