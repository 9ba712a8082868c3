package es

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponse = `{
  "took": 1,
  "timed_out": false,
  "_shards": {"total": 1, "successful": 1, "skipped": 0, "failed": 0},
  "hits": {
    "total": {"value": 7, "relation": "eq"},
    "max_score": null,
    "hits": [
      {"_index": "apps", "_id": "1", "_score": null, "_source": {
        "id": "123e4567-e89b-12d3-a456-426614174000",
        "name": "billing",
        "environment": "production",
        "domains": ["billing.example.com"],
        "maintenance": false,
        "version": "v3"
      }}
    ]
  }
}`

const emptyResponse = `{
  "took": 1,
  "timed_out": false,
  "_shards": {"total": 1, "successful": 1, "skipped": 0, "failed": 0},
  "hits": {"total": {"value": 0, "relation": "eq"}, "max_score": null, "hits": []}
}`

type capturedRequest struct {
	path string
	body map[string]any
}

func newStubReader(t *testing.T, response string) (*AppReader, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	r, err := NewAppReader(ClientConfig{
		Addresses: []string{srv.URL},
		IndexName: "apps",
	})
	require.NoError(t, err)
	return r, captured
}

func TestAppReader_ListApps(t *testing.T) {
	r, captured := newStubReader(t, searchResponse)

	page, err := r.ListApps(context.Background(), storage.ListOptions{
		Cursor: pagination.Cursor{Offset: 5, Limit: 5},
		Query:  "bill",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "billing", page.Items[0].Name)
	assert.Equal(t, []string{"billing.example.com"}, page.Items[0].Domains)

	assert.True(t, strings.HasSuffix(captured.path, "/apps/_search"))
	assert.EqualValues(t, 5, captured.body["from"])
	assert.EqualValues(t, 5, captured.body["size"])
	assert.Equal(t, true, captured.body["track_total_hits"])
	assert.Contains(t, captured.body["query"], "prefix")
}

func TestAppReader_GetApp_NotFound(t *testing.T) {
	r, _ := newStubReader(t, emptyResponse)

	_, err := r.GetApp(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrAppNotFound)
}

func TestAppDocument_InvalidID(t *testing.T) {
	_, err := AppDocument{ID: "not-a-uuid"}.toDomain()
	assert.Error(t, err)
}
