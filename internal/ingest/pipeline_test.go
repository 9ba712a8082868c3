package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	batches [][]domain.App
	failOn  int
}

func (w *recordingWriter) UpsertApps(_ context.Context, apps []domain.App) error {
	w.batches = append(w.batches, apps)
	if w.failOn > 0 && len(w.batches) == w.failOn {
		return errors.New("connection reset")
	}
	return nil
}

func namedApps(names ...string) []domain.App {
	apps := make([]domain.App, 0, len(names))
	for _, n := range names {
		apps = append(apps, domain.App{Name: n})
	}
	return apps
}

func TestPipeline_Run_Bulk(t *testing.T) {
	w := &recordingWriter{}
	p := NewPipeline(w, WithBulk(2))

	stats, err := p.Run(context.Background(), namedApps("a", "b", "c", "d", "e"))
	require.NoError(t, err)

	assert.Equal(t, Stats{Imported: 5}, stats)
	require.Len(t, w.batches, 3)
	assert.Len(t, w.batches[0], 2)
	assert.Len(t, w.batches[2], 1)
}

func TestPipeline_Run_OneByOne(t *testing.T) {
	w := &recordingWriter{}
	p := NewPipeline(w)

	stats, err := p.Run(context.Background(), namedApps("a", "b", "c"))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Imported)
	assert.Len(t, w.batches, 3)
}

func TestPipeline_Run_SkipsInvalid(t *testing.T) {
	w := &recordingWriter{}
	p := NewPipeline(w, WithBulk(10))

	stats, err := p.Run(context.Background(), namedApps("web", "", "api", "web"))
	require.NoError(t, err)

	assert.Equal(t, Stats{Imported: 2, Skipped: 2}, stats)
	require.Len(t, w.batches, 1)
	assert.Equal(t, "web", w.batches[0][0].Name)
	assert.Equal(t, "api", w.batches[0][1].Name)
}

func TestPipeline_Run_FillsIdentityAndTimestamps(t *testing.T) {
	w := &recordingWriter{}
	p := NewPipeline(w, WithBulk(10))
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	keep := uuid.New()
	_, err := p.Run(context.Background(), []domain.App{{Name: "web"}, {Name: "api", ID: keep}})
	require.NoError(t, err)

	web, api := w.batches[0][0], w.batches[0][1]
	assert.Equal(t, domain.AppID("web"), web.ID)
	assert.Equal(t, keep, api.ID)
	assert.Equal(t, fixed, web.CreatedAt)
	assert.Equal(t, fixed, web.UpdatedAt)
}

func TestPipeline_Run_WriteFailureContinues(t *testing.T) {
	w := &recordingWriter{failOn: 1}
	p := NewPipeline(w, WithBulk(2))

	stats, err := p.Run(context.Background(), namedApps("a", "b", "c"))
	require.NoError(t, err)

	assert.Equal(t, Stats{Imported: 1, Failed: 2}, stats)
}

func TestPipeline_Run_Cancelled(t *testing.T) {
	w := &recordingWriter{}
	p := NewPipeline(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := p.Run(ctx, namedApps("a"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Imported)
	assert.Empty(t, w.batches)
}
