package es

import (
	"context"
	"log/slog"
)

func (r *AppReader) Healthy(ctx context.Context) bool {
	ok, err := r.client.Ping().IsSuccess(ctx)
	if err != nil {
		slog.Warn("Elasticsearch ping failed", "error", err)
		return false
	}
	return ok
}
