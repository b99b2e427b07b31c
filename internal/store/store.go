// Package store persists the customer collection as a single JSON blob under one key.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"customer-registry/internal/model"

	"go.uber.org/zap"
)

// Drivers accepted by New.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Store loads and saves the whole collection. Load never fails: missing or malformed
// data yields an empty collection.
type Store interface {
	Load(ctx context.Context) []model.Customer
	Save(ctx context.Context, customers []model.Customer) error
	Close() error
}

// Config selects and configures a Store.
type Config struct {
	Driver      string
	Path        string
	Key         string
	RedisURL    string
	DatabaseURL string
}

// New opens the store named by cfg.Driver.
func New(ctx context.Context, cfg Config, log *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg.Path, log), nil
	case DriverMemory:
		return NewMemoryStore(log), nil
	case DriverRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.Key, log)
	case DriverPostgres:
		return NewPostgresStore(ctx, cfg.DatabaseURL, cfg.Key, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func encode(customers []model.Customer) ([]byte, error) {
	if customers == nil {
		customers = []model.Customer{}
	}
	data, err := json.Marshal(customers)
	if err != nil {
		return nil, fmt.Errorf("marshal customers: %w", err)
	}
	return data, nil
}

func decode(data []byte, log *zap.Logger) []model.Customer {
	customers := []model.Customer{}
	if len(data) == 0 {
		return customers
	}

	var stored []model.Customer
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn("ignoring malformed stored customers", zap.Int("bytes", len(data)), zap.Error(err))
		return customers
	}
	if stored == nil {
		return customers
	}
	return stored
}
