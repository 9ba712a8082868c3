package storage

import (
	"context"

	"github.com/DjordjeVuckovic/ship-console/internal/apperr"
	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
)

var ErrAppNotFound = apperr.NewNotFound("app")

// ListOptions selects one page of the app catalog
type ListOptions struct {
	Cursor pagination.Cursor
	// Query keeps only apps whose name starts with it
	Query string
}

// AppPage is one page of apps ordered by name
type AppPage struct {
	Items []domain.App `json:"items"`
	Total int64        `json:"total"`
}

type Reader interface {
	// ListApps returns the page selected by opts and the total number of
	// apps matching opts.Query
	ListApps(ctx context.Context, opts ListOptions) (*AppPage, error)
	// GetApp returns ErrAppNotFound when no app carries name
	GetApp(ctx context.Context, name string) (*domain.App, error)
}
