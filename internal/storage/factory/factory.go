package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/es"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/pg"
	"github.com/DjordjeVuckovic/ship-console/pkg/server"
)

// Catalog is an app catalog backend ready to serve requests
type Catalog struct {
	Reader storage.Reader
	Health server.HealthChecker

	close func()
}

// Close releases the backend connections
func (c *Catalog) Close() {
	if c.close != nil {
		c.close()
	}
}

// NewCatalog creates the app catalog backend selected by cfg.Type
func NewCatalog(ctx context.Context, cfg StorageConfig) (*Catalog, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Catalog{
			Reader: pg.NewAppReader(pool),
			Health: pg.NewHealthChecker(pool),
			close:  pool.Close,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		reader, err := es.NewAppReader(*cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Catalog{
			Reader: reader,
			Health: reader,
		}, nil

	case storage.InMem:
		reader := in_mem.NewAppReader()
		if cfg.SeedFile != "" {
			var err error
			if reader, err = in_mem.NewAppReaderFromFile(cfg.SeedFile); err != nil {
				return nil, err
			}
		}
		return &Catalog{
			Reader: reader,
			Health: server.NewOkHealthChecker(),
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// CatalogWriter is a writable app catalog backend
type CatalogWriter struct {
	storage.Writer

	close func()
}

func (w *CatalogWriter) Close() {
	if w.close != nil {
		w.close()
	}
}

// NewWriter creates the writable backend selected by cfg.Type. The in_mem
// writer only lives as long as the process.
func NewWriter(ctx context.Context, cfg StorageConfig) (*CatalogWriter, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &CatalogWriter{Writer: pg.NewAppReader(pool), close: pool.Close}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		indexer, err := es.NewAppIndexer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &CatalogWriter{Writer: indexer}, nil

	case storage.InMem:
		return &CatalogWriter{Writer: in_mem.NewAppReader()}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
