package services

import (
	"bakery-shop/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// RedisCartStore holds each session's cart as a JSON blob whose TTL is the
// session expiry, refreshed on every save.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) Get(ctx context.Context, key string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", key, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", key, err)
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, key string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", key, err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", key, err)
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("clear cart %s: %w", key, err)
	}
	return nil
}
