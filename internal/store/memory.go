package store

import (
	"context"
	"sync"

	"customer-registry/internal/model"

	"go.uber.org/zap"
)

// MemoryStore holds the encoded collection in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	log  *zap.Logger
}

func NewMemoryStore(log *zap.Logger) *MemoryStore {
	return &MemoryStore{log: log}
}

func (s *MemoryStore) Load(_ context.Context) []model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.data, s.log)
}

func (s *MemoryStore) Save(_ context.Context, customers []model.Customer) error {
	data, err := encode(customers)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Raw returns the stored blob.
func (s *MemoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}

// SetRaw replaces the stored blob without validation.
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}

func (s *MemoryStore) Close() error { return nil }
