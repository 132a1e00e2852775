package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyValueStore implements ports.KeyValueStore on Redis strings. Every write
// refreshes the key's expiry, so an abandoned session eventually disappears.
type KeyValueStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKeyValueStore wraps client. A ttl of zero keeps keys forever.
func NewKeyValueStore(client *redis.Client, ttl time.Duration) *KeyValueStore {
	return &KeyValueStore{client: client, ttl: ttl}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
