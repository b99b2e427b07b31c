package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-registry/internal/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps the collection as a JSON string value at a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

// NewRedisStore connects to the Redis server at url and verifies the connection.
func NewRedisStore(ctx context.Context, url, key string, log *zap.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("connected to Redis", zap.String("addr", opts.Addr), zap.String("key", key))

	return &RedisStore{client: client, key: key, log: log}, nil
}

func (s *RedisStore) Load(ctx context.Context) []model.Customer {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.Customer{}
	}
	if err != nil {
		s.log.Warn("failed to read customers from Redis", zap.String("key", s.key), zap.Error(err))
		return []model.Customer{}
	}
	return decode(data, s.log)
}

func (s *RedisStore) Save(ctx context.Context, customers []model.Customer) error {
	data, err := encode(customers)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write customers to Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
