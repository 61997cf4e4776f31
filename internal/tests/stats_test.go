package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"soulfood/internal/domain"
	"soulfood/internal/mocks"
	"soulfood/internal/service"
)

func TestStatsConsumer_ProcessEvent(t *testing.T) {
	store := mocks.NewStatsStore(t)
	consumer := service.NewStatsConsumer(nil, store)

	placedAt := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)
	store.On("RecordOrder", mock.Anything, 1, "2026-08-31", dec("28.49"), dec("3.40")).
		Return(nil).Once()

	consumer.ProcessEvent(context.Background(), domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      42,
		RestaurantID: 1,
		Total:        dec("28.49"),
		FeesSaved:    dec("3.40"),
		Timestamp:    placedAt,
	})
}

func TestStatsConsumer_IgnoresStatusChanges(t *testing.T) {
	store := mocks.NewStatsStore(t)
	consumer := service.NewStatsConsumer(nil, store)

	// no RecordOrder expectation: status changes are not order counts
	consumer.ProcessEvent(context.Background(), domain.OrderEvent{
		Type:         domain.EventStatusChanged,
		OrderID:      42,
		RestaurantID: 1,
		Status:       "accepted",
		Timestamp:    time.Now(),
	})
}

func TestStatsService_Today(t *testing.T) {
	store := mocks.NewStatsStore(t)
	svc := service.NewStatsService(store)

	day := time.Now().Format("2006-01-02")
	store.On("GetDailyStats", mock.Anything, 1, day).
		Return(&domain.RestaurantStats{RestaurantID: 1, Day: day, Orders: 2}, nil).Once()

	stats, err := svc.Today(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.Orders)
}
