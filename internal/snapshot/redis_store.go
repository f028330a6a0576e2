package snapshot

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the state blob in Redis. No TTLs: the snapshot is
// the system of record, not a cache.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) LoadState(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, StateKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) SaveState(ctx context.Context, data []byte) error {
	return s.client.Set(ctx, StateKey, data, 0).Err()
}

func (s *RedisStore) LoadRemember(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, RememberKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

func (s *RedisStore) SaveRemember(ctx context.Context, remember bool) error {
	val := "false"
	if remember {
		val = "true"
	}
	return s.client.Set(ctx, RememberKey, val, 0).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Name() string { return "redis" }

func (s *RedisStore) Close() error { return s.client.Close() }
