package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"customer-registry/internal/model"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	selectQuery      = `SELECT value FROM kv_store WHERE key = $1`
	upsertQuery      = `INSERT INTO kv_store (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
)

// PostgresStore keeps the collection as one row of a key-value table.
type PostgresStore struct {
	db  *sql.DB
	key string
	log *zap.Logger
}

// NewPostgresStore opens the database at dsn and creates the key-value table if needed.
func NewPostgresStore(ctx context.Context, dsn, key string, log *zap.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{db: db, key: key, log: log}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("connected to Postgres", zap.String("key", key))
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) []model.Customer {
	var value string
	err := s.db.QueryRowContext(ctx, selectQuery, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Customer{}
	}
	if err != nil {
		s.log.Warn("failed to read customers from Postgres", zap.String("key", s.key), zap.Error(err))
		return []model.Customer{}
	}
	return decode([]byte(value), s.log)
}

func (s *PostgresStore) Save(ctx context.Context, customers []model.Customer) error {
	data, err := encode(customers)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, upsertQuery, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to write customers to Postgres: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
