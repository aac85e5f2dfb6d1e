// internal/storage/storage_test.go
package storage

import (
	"path/filepath"
	"testing"

	"github.com/your-org/storefront-gateway/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Storage: config.StorageConfig{
			Backend:  "file",
			FilePath: filepath.Join(dir, "state.json"),
			DBPath:   filepath.Join(dir, "state.db"),
		},
	}
}
