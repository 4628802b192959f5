// internal/pkg/storage/local.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
)

// LocalStorage stores files on the local filesystem, for development
// and tests.
type LocalStorage struct {
	root    string
	baseURL string
}

// NewLocalStorage creates a local filesystem backend
func NewLocalStorage(cfg *appconfig.StorageConfig) *LocalStorage {
	root := cfg.LocalPath
	if root == "" {
		root = "./uploads"
	}
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Upload writes the file under the storage root and returns its URL
func (l *LocalStorage) Upload(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	path := filepath.Join(l.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", l.baseURL, key), nil
}

// Delete removes the file from disk
func (l *LocalStorage) Delete(_ context.Context, key string) error {
	path := filepath.Join(l.root, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
