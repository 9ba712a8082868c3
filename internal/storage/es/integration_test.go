package es

import (
	"context"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/ship-console/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppCatalog_Elasticsearch(t *testing.T) {
	if testing.Short() {
		t.Skip("container backed test")
	}

	ctx := context.Background()
	node := pkgtesting.NewESContainer(ctx, t)
	cfg := ClientConfig{Addresses: []string{node.Address}, IndexName: "apps_it"}

	indexer, err := NewAppIndexer(ctx, cfg)
	require.NoError(t, err)

	apps := make([]domain.App, 0, 12)
	for i := 0; i < 12; i++ {
		apps = append(apps, domain.App{ID: uuid.New(), Name: fmt.Sprintf("app-%03d", i), Version: "1"})
	}
	require.NoError(t, indexer.UpsertApps(ctx, apps))

	// same name replaces the document
	apps[3].Version = "2"
	require.NoError(t, indexer.UpsertApps(ctx, apps[3:4]))

	reader, err := NewAppReader(cfg)
	require.NoError(t, err)
	assert.True(t, reader.Healthy(ctx))

	page, err := reader.ListApps(ctx, storage.ListOptions{Cursor: pagination.Cursor{Offset: 5, Limit: 5}})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "app-005", page.Items[0].Name)

	page, err = reader.ListApps(ctx, storage.ListOptions{Cursor: pagination.DefaultCursor(), Query: "app-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	app, err := reader.GetApp(ctx, "app-003")
	require.NoError(t, err)
	assert.Equal(t, "2", app.Version)

	_, err = reader.GetApp(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrAppNotFound)
}
