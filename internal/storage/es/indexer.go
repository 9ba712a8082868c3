package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// AppIndexer writes apps into the catalog index. Documents are keyed by app
// name so re-importing an app replaces it.
type AppIndexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewAppIndexer(ctx context.Context, config ClientConfig) (*AppIndexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexer := &AppIndexer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := indexer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return indexer, nil
}

func (e *AppIndexer) UpsertApps(ctx context.Context, apps []domain.App) error {
	if len(apps) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 5 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64

	for _, app := range apps {
		body, err := json.Marshal(newAppDocument(app))
		if err != nil {
			slog.Error("Failed to marshal app document", "error", err, "app", app.Name)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: app.Name,
			Body:       bytes.NewReader(body),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("Bulk index error", "error", err, "app", item.DocumentID)
					return
				}
				slog.Error("Bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "app", item.DocumentID)
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("Failed to add app to bulk indexer", "error", err, "app", app.Name)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	stats := bi.Stats()
	slog.Info("Bulk indexing completed",
		"indexed", stats.NumIndexed,
		"failed", failed.Load(),
		"total", len(apps),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d apps", n, len(apps))
	}
	return nil
}

func (e *AppIndexer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Debug("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"name":        types.NewKeywordProperty(),
			"environment": types.NewKeywordProperty(),
			"domains":     types.NewKeywordProperty(),
			"maintenance": types.NewBooleanProperty(),
			"version":     types.NewKeywordProperty(),
			"created_at":  types.NewDateProperty(),
			"updated_at":  types.NewDateProperty(),
		},
	}

	res, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created", "index", e.indexName)
	return nil
}
