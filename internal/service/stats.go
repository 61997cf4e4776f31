package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"soulfood/internal/domain"
)

const statsDayFormat = "2006-01-02"

// StatsConsumer folds the order event stream into per-restaurant daily
// counters for the merchant dashboard.
type StatsConsumer struct {
	Reader *kafka.Reader
	Stats  StatsStore
}

func NewStatsConsumer(reader *kafka.Reader, stats StatsStore) *StatsConsumer {
	return &StatsConsumer{Reader: reader, Stats: stats}
}

func (c *StatsConsumer) Start(ctx context.Context) {
	log.Println("Starting order stats consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling order event: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *StatsConsumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced {
		return
	}

	day := event.Timestamp.Format(statsDayFormat)
	if event.Timestamp.IsZero() {
		day = time.Now().Format(statsDayFormat)
	}

	if err := c.Stats.RecordOrder(ctx, event.RestaurantID, day, event.Total, event.FeesSaved); err != nil {
		log.Printf("Error recording stats for restaurant %d: %v", event.RestaurantID, err)
		return
	}

	log.Printf("Recorded order %d for restaurant %d stats", event.OrderID, event.RestaurantID)
}

// StatsService is the read side of the counters.
type StatsService struct {
	store StatsStore
}

func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) Today(ctx context.Context, restaurantID int) (*domain.RestaurantStats, error) {
	return s.store.GetDailyStats(ctx, restaurantID, time.Now().Format(statsDayFormat))
}

var _ StatsServiceInterface = (*StatsService)(nil)
