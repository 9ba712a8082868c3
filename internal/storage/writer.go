package storage

import (
	"context"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
)

// Writer stores apps keyed by name, replacing existing ones
type Writer interface {
	UpsertApps(ctx context.Context, apps []domain.App) error
}
