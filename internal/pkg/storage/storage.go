// internal/pkg/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"io"

	appconfig "github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
)

// Storage persists uploaded files and returns public URLs
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New creates the storage backend named in config
func New(ctx context.Context, cfg *appconfig.StorageConfig) (Storage, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3Storage(ctx, cfg)
	case "local", "":
		return NewLocalStorage(cfg), nil
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
