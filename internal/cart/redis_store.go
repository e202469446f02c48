package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// RedisStore implements Store on redis so carts survive process
// restarts. Each session has a single consumer, so read-modify-write
// without cross-process locking is enough here.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		now := time.Now()
		return &domain.Cart{SessionID: sessionID, CreatedAt: now, UpdatedAt: now}, nil
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

func (s *RedisStore) AddItem(ctx context.Context, sessionID string, product domain.Product) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Material:  product.Material,
			UnitPrice: product.RetailPrice,
			Quantity:  1,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *RedisStore) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		changed = true
		break
	}

	if changed {
		if err := s.save(ctx, cart); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

func (s *RedisStore) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return nil
}

func (s *RedisStore) save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if ret := s.client.Set(ctx, cartKey(cart.SessionID), data, s.ttl); ret.Err() != nil {
		return fmt.Errorf("redis set failed: %w", ret.Err())
	}
	return nil
}
