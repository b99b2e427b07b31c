package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"customer-registry/internal/model"

	"go.uber.org/zap"
)

// FileStore keeps the collection in a JSON file on disk.
type FileStore struct {
	path string
	log  *zap.Logger
}

func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Load(_ context.Context) []model.Customer {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Customer{}
	}
	if err != nil {
		s.log.Warn("failed to read customers file", zap.String("path", s.path), zap.Error(err))
		return []model.Customer{}
	}
	return decode(data, s.log)
}

// Save replaces the file atomically: the collection is written to a temp file in the same
// directory, then renamed over the target.
func (s *FileStore) Save(_ context.Context, customers []model.Customer) error {
	data, err := encode(customers)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".customers-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write customers: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace customers file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
