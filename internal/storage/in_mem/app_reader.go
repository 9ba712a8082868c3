package in_mem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Apps []domain.App `yaml:"apps"`
}

// AppReader keeps the app catalog in memory, ordered by name
type AppReader struct {
	storageLock sync.RWMutex
	apps        []domain.App
}

func NewAppReader(apps ...domain.App) *AppReader {
	r := &AppReader{}
	r.Put(apps...)
	return r
}

// NewAppReaderFromFile seeds the catalog from a YAML file of the form
// `apps: [{name: ..., environment: ...}]`
func NewAppReaderFromFile(path string) (*AppReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return NewAppReaderFromYAML(f)
}

func NewAppReaderFromYAML(reader io.Reader) (*AppReader, error) {
	apps, err := DecodeSeed(reader)
	if err != nil {
		return nil, err
	}

	slog.Info("Seeding in-memory app catalog", "apps", len(apps))
	return NewAppReader(apps...), nil
}

// DecodeSeed reads the apps of a YAML seed document. An empty document
// yields no apps.
func DecodeSeed(reader io.Reader) ([]domain.App, error) {
	var seed seedFile
	if err := yaml.NewDecoder(reader).Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return seed.Apps, nil
}

// Put inserts or replaces apps by name
func (r *AppReader) Put(apps ...domain.App) {
	r.storageLock.Lock()
	defer r.storageLock.Unlock()

	now := time.Now().UTC()
	for _, app := range apps {
		if app.ID == uuid.Nil {
			app.ID = domain.AppID(app.Name)
		}
		if app.CreatedAt.IsZero() {
			app.CreatedAt = now
		}
		if app.UpdatedAt.IsZero() {
			app.UpdatedAt = app.CreatedAt
		}

		i, found := slices.BinarySearchFunc(r.apps, app.Name, func(a domain.App, name string) int {
			return strings.Compare(a.Name, name)
		})
		if found {
			r.apps[i] = app
		} else {
			r.apps = slices.Insert(r.apps, i, app)
		}
	}
}

func (r *AppReader) UpsertApps(_ context.Context, apps []domain.App) error {
	r.Put(apps...)
	return nil
}

func (r *AppReader) ListApps(_ context.Context, opts storage.ListOptions) (*storage.AppPage, error) {
	r.storageLock.RLock()
	defer r.storageLock.RUnlock()

	var matched []domain.App
	for _, app := range r.apps {
		if strings.HasPrefix(app.Name, opts.Query) {
			matched = append(matched, app)
		}
	}

	start := min(opts.Cursor.Offset, len(matched))
	end := min(start+opts.Cursor.Limit, len(matched))

	return &storage.AppPage{
		Items: slices.Clone(matched[start:end]),
		Total: int64(len(matched)),
	}, nil
}

func (r *AppReader) GetApp(_ context.Context, name string) (*domain.App, error) {
	r.storageLock.RLock()
	defer r.storageLock.RUnlock()

	i, found := slices.BinarySearchFunc(r.apps, name, func(a domain.App, name string) int {
		return strings.Compare(a.Name, name)
	})
	if !found {
		return nil, fmt.Errorf("%w: %s", storage.ErrAppNotFound, name)
	}

	app := r.apps[i]
	return &app, nil
}
