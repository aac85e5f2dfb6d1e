// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront-gateway/internal/config"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable local storage shared by all state owners.
// Values are opaque strings keyed by fixed names; concurrent writers to the
// same key follow last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Open creates the storage backend selected by configuration
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case "file":
		return NewFileStore(cfg.Storage.FilePath)
	case "redis":
		return NewRedisStore(cfg)
	case "sqlite":
		return NewGormStore(cfg.Storage.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
