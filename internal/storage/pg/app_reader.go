package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const appColumns = `id, name, environment, domains, maintenance, version, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type AppReader struct {
	db *pgxpool.Pool
}

func NewAppReader(pool *ConnectionPool) *AppReader {
	return &AppReader{db: pool.conn}
}

func (r *AppReader) ListApps(ctx context.Context, opts storage.ListOptions) (*storage.AppPage, error) {
	slog.Debug("Listing apps from pg", "query", opts.Query, "offset", opts.Cursor.Offset, "limit", opts.Cursor.Limit)

	pattern := likeEscaper.Replace(opts.Query) + "%"

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM apps WHERE name LIKE $1`, pattern).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count apps: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+appColumns+`
		FROM apps
		WHERE name LIKE $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`, pattern, opts.Cursor.Limit, opts.Cursor.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list query: %w", err)
	}
	defer rows.Close()

	var apps []domain.App
	for rows.Next() {
		app, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &storage.AppPage{
		Items: apps,
		Total: total,
	}, nil
}

func (r *AppReader) GetApp(ctx context.Context, name string) (*domain.App, error) {
	row := r.db.QueryRow(ctx, `SELECT `+appColumns+` FROM apps WHERE name = $1`, name)

	app, err := scanApp(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrAppNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// UpsertApps writes apps keyed by name
func (r *AppReader) UpsertApps(ctx context.Context, apps []domain.App) error {
	batch := &pgx.Batch{}
	for _, app := range apps {
		batch.Queue(`
			INSERT INTO apps (`+appColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (name) DO UPDATE SET
				environment = EXCLUDED.environment,
				domains = EXCLUDED.domains,
				maintenance = EXCLUDED.maintenance,
				version = EXCLUDED.version,
				updated_at = EXCLUDED.updated_at
		`, app.ID, app.Name, app.Environment, nonNil(app.Domains), app.Maintenance, app.Version, app.CreatedAt, app.UpdatedAt)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert apps: %w", err)
	}
	return nil
}

func scanApp(row pgx.Row) (*domain.App, error) {
	var app domain.App
	if err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Environment,
		&app.Domains,
		&app.Maintenance,
		&app.Version,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan app: %w", err)
	}
	return &app, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
