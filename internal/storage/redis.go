package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"soulfood/internal/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// RedisStore holds session carts as JSON values and the daily order counters
// the merchant dashboard reads.
type RedisStore struct {
	Client  *redis.Client
	CartTTL time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		Client:  client,
		CartTTL: 24 * time.Hour,
	}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := s.Client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	return &cart, nil
}

func (s *RedisStore) Set(ctx context.Context, userID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.Client.Set(ctx, cartKey(userID), data, s.CartTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.Client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) RecordOrder(ctx context.Context, restaurantID int, day string, total, feesSaved decimal.Decimal) error {
	key := statsKey(restaurantID, day)
	pipe := s.Client.TxPipeline()
	pipe.HIncrBy(ctx, key, "orders", 1)
	pipe.HIncrByFloat(ctx, key, "revenue", total.InexactFloat64())
	pipe.HIncrByFloat(ctx, key, "fees_saved", feesSaved.InexactFloat64())
	pipe.Expire(ctx, key, 48*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) GetDailyStats(ctx context.Context, restaurantID int, day string) (*domain.RestaurantStats, error) {
	fields, err := s.Client.HGetAll(ctx, statsKey(restaurantID, day)).Result()
	if err != nil {
		return nil, err
	}

	stats := &domain.RestaurantStats{
		RestaurantID: restaurantID,
		Day:          day,
		Revenue:      decimal.Zero,
		FeesSaved:    decimal.Zero,
	}
	if v, ok := fields["orders"]; ok {
		stats.Orders, _ = strconv.ParseInt(v, 10, 64)
	}
	if v, ok := fields["revenue"]; ok {
		if d, err := decimal.NewFromString(v); err == nil {
			stats.Revenue = domain.RoundMoney(d)
		}
	}
	if v, ok := fields["fees_saved"]; ok {
		if d, err := decimal.NewFromString(v); err == nil {
			stats.FeesSaved = domain.RoundMoney(d)
		}
	}

	return stats, nil
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func statsKey(restaurantID int, day string) string {
	return "stats:daily:" + day + ":" + strconv.Itoa(restaurantID)
}
