package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists snapshot blobs with a TTL, grounded on the teacher's
// internal/module/analytics/mbms.redisCache (key-prefix namespacing,
// redis.Nil treated as a cache miss rather than an error). Intended for
// short-lived what-if branches in a scenario sweep that don't need
// durability beyond the sweep's lifetime.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps an existing redis.Client. ttl of zero means the key
// never expires.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: "simcore:snapshot:", ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if s.client == nil {
		return errors.New("store: redis client is nil")
	}
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("store: redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.client == nil {
		return nil, false, errors.New("store: redis client is nil")
	}
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: redis get: %w", err)
	}
	return data, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("store: redis client is nil")
	}
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("store: redis del: %w", err)
	}
	return nil
}
