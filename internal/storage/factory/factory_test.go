package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults to in-memory", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "redis")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg requires connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("es config", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "http://es-1:9200,,http://es-2:9200")
		t.Setenv("ES_INDEX_NAME", "apps")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"http://es-1:9200", "http://es-2:9200"}, cfg.Es.Addresses)
	})

	t.Run("es index defaults", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "http://es-1:9200")
		t.Setenv("ES_INDEX_NAME", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "apps", cfg.Es.IndexName)
	})
}

func TestNewCatalog_InMemWithSeed(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "apps.yaml")
	require.NoError(t, os.WriteFile(seed, []byte("apps:\n  - name: web\n  - name: api\n"), 0o600))

	catalog, err := NewCatalog(context.Background(), StorageConfig{Type: storage.InMem, SeedFile: seed})
	require.NoError(t, err)
	defer catalog.Close()

	page, err := catalog.Reader.ListApps(context.Background(), storage.ListOptions{Cursor: pagination.DefaultCursor()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.True(t, catalog.Health.Healthy(context.Background()))
}

func TestNewCatalog_Unsupported(t *testing.T) {
	_, err := NewCatalog(context.Background(), StorageConfig{Type: "redis"})
	assert.Error(t, err)
}

func TestNewWriter_InMem(t *testing.T) {
	w, err := NewWriter(context.Background(), StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	defer w.Close()

	assert.NoError(t, w.UpsertApps(context.Background(), nil))
}

func TestNewWriter_Unsupported(t *testing.T) {
	_, err := NewWriter(context.Background(), StorageConfig{Type: "redis"})
	assert.Error(t, err)
}
