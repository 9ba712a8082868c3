package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/google/uuid"
)

const defaultBatchSize = 500

// BulkOptions defines common bulk processing options
type BulkOptions struct {
	Enabled bool
	Size    int
}

type PipelineConfig struct {
	Name string
	Bulk *BulkOptions
}

// Stats counts the outcome of one pipeline run
type Stats struct {
	Imported int
	Skipped  int
	Failed   int
}

// Pipeline imports apps into a catalog backend
type Pipeline struct {
	writer storage.Writer
	config *PipelineConfig
	now    func() time.Time
}

type PipelineOption func(*Pipeline)

func WithBulk(size int) PipelineOption {
	return func(p *Pipeline) {
		if size <= 0 {
			size = defaultBatchSize
		}
		p.config.Bulk = &BulkOptions{Enabled: true, Size: size}
	}
}

func WithName(name string) PipelineOption {
	return func(p *Pipeline) {
		p.config.Name = name
	}
}

func NewPipeline(writer storage.Writer, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		writer: writer,
		config: &PipelineConfig{
			Name: "app-import",
			Bulk: &BulkOptions{Enabled: false, Size: defaultBatchSize},
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run writes apps to the backend. Apps without a name and repeated names are
// skipped. A failed write is logged and counted; Run carries on with the
// next batch and only stops when ctx is done.
func (p *Pipeline) Run(ctx context.Context, apps []domain.App) (Stats, error) {
	start := p.now()
	slog.Info("Starting import",
		"pipeline", p.config.Name,
		"apps", len(apps),
		"bulk_enabled", p.config.Bulk.Enabled,
		"batch_size", p.config.Bulk.Size,
	)

	var stats Stats
	valid := p.prepare(apps, start.UTC(), &stats)

	size := 1
	if p.config.Bulk.Enabled {
		size = p.config.Bulk.Size
	}

	for len(valid) > 0 {
		if err := ctx.Err(); err != nil {
			slog.Info("Import cancelled", "pipeline", p.config.Name, "imported", stats.Imported)
			return stats, err
		}

		batch := valid[:min(size, len(valid))]
		valid = valid[len(batch):]

		if err := p.writer.UpsertApps(ctx, batch); err != nil {
			slog.Error("Failed to write apps", "pipeline", p.config.Name, "count", len(batch), "error", err)
			stats.Failed += len(batch)
			continue
		}
		stats.Imported += len(batch)
	}

	slog.Info("Import completed",
		"pipeline", p.config.Name,
		"duration", time.Since(start),
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return stats, nil
}

func (p *Pipeline) prepare(apps []domain.App, now time.Time, stats *Stats) []domain.App {
	seen := make(map[string]struct{}, len(apps))
	valid := make([]domain.App, 0, len(apps))

	for _, app := range apps {
		if app.Name == "" {
			slog.Warn("Skipping app without a name", "pipeline", p.config.Name)
			stats.Skipped++
			continue
		}
		if _, dup := seen[app.Name]; dup {
			slog.Warn("Skipping repeated app", "pipeline", p.config.Name, "app", app.Name)
			stats.Skipped++
			continue
		}
		seen[app.Name] = struct{}{}

		if app.ID == uuid.Nil {
			app.ID = domain.AppID(app.Name)
		}
		if app.CreatedAt.IsZero() {
			app.CreatedAt = now
		}
		if app.UpdatedAt.IsZero() {
			app.UpdatedAt = now
		}
		valid = append(valid, app)
	}
	return valid
}
