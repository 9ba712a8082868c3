package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

type AppReader struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewAppReader(config ClientConfig) (*AppReader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &AppReader{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (r *AppReader) ListApps(ctx context.Context, opts storage.ListOptions) (*storage.AppPage, error) {
	slog.Debug("Listing apps from es", "query", opts.Query, "offset", opts.Cursor.Offset, "limit", opts.Cursor.Limit)

	query := &types.Query{MatchAll: &types.MatchAllQuery{}}
	if opts.Query != "" {
		query = &types.Query{
			Prefix: map[string]types.PrefixQuery{
				"name": {Value: opts.Query},
			},
		}
	}

	asc := sortorder.Asc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(query).
		From(opts.Cursor.Offset).
		Size(opts.Cursor.Limit).
		TrackTotalHits(true).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"name": {Order: &asc},
			},
		}).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch app listing failed", "error", err, "query", opts.Query)
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}

	apps, err := mapHits(res.Hits.Hits)
	if err != nil {
		return nil, err
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return &storage.AppPage{
		Items: apps,
		Total: total,
	}, nil
}

func (r *AppReader) GetApp(ctx context.Context, name string) (*domain.App, error) {
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				"name": {Value: name},
			},
		}).
		Size(1).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get app %s: %w", name, err)
	}

	apps, err := mapHits(res.Hits.Hits)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, fmt.Errorf("%w: %s", storage.ErrAppNotFound, name)
	}
	return &apps[0], nil
}

func mapHits(hits []types.Hit) ([]domain.App, error) {
	apps := make([]domain.App, 0, len(hits))
	for _, hit := range hits {
		var doc AppDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal app document: %w", err)
		}
		app, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}
