package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

// OrderEvent is the audit record published after order writes. The stats
// consumer folds these into the per-restaurant daily counters.
type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      int             `json:"order_id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	FeesSaved    decimal.Decimal `json:"fees_saved"`
	Timestamp    time.Time       `json:"timestamp"`
}
