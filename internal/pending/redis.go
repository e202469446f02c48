package pending

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

const pendingKey = "orders:pending"

// RedisStorage keeps the pending queue in a redis list so it survives
// restarts.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Save(ctx context.Context, order *domain.OrderRecord) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order failed: %w", err)
	}
	if err := s.client.RPush(ctx, pendingKey, data).Err(); err != nil {
		return fmt.Errorf("redis rpush failed: %w", err)
	}
	return nil
}

func (s *RedisStorage) List(ctx context.Context) ([]domain.OrderRecord, error) {
	entries, err := s.client.LRange(ctx, pendingKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange failed: %w", err)
	}

	orders := make([]domain.OrderRecord, 0, len(entries))
	for _, entry := range entries {
		var order domain.OrderRecord
		if err := json.Unmarshal([]byte(entry), &order); err != nil {
			return nil, fmt.Errorf("unmarshal order failed: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *RedisStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, pendingKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
