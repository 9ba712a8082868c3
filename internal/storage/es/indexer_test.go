package es

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCluster struct {
	mu         sync.Mutex
	indexExist bool
	created    bool
	bulkBodies []string
	bulkReply  string
}

func (s *stubCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Elastic-Product", "Elasticsearch")

	switch {
	case r.Method == http.MethodHead && r.URL.Path == "/apps":
		if !s.indexExist {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut && r.URL.Path == "/apps":
		s.created = true
		s.indexExist = true
		_, _ = io.WriteString(w, `{"acknowledged": true, "shards_acknowledged": true, "index": "apps"}`)
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		body, _ := io.ReadAll(r.Body)
		s.bulkBodies = append(s.bulkBodies, string(body))
		_, _ = io.WriteString(w, s.bulkReply)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newStubIndexer(t *testing.T, cluster *stubCluster) *AppIndexer {
	t.Helper()

	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)

	indexer, err := NewAppIndexer(context.Background(), ClientConfig{
		Addresses: []string{srv.URL},
		IndexName: "apps",
	})
	require.NoError(t, err)
	return indexer
}

func TestAppIndexer_CreatesMissingIndex(t *testing.T) {
	cluster := &stubCluster{}
	newStubIndexer(t, cluster)
	assert.True(t, cluster.created)
}

func TestAppIndexer_KeepsExistingIndex(t *testing.T) {
	cluster := &stubCluster{indexExist: true}
	newStubIndexer(t, cluster)
	assert.False(t, cluster.created)
}

func TestAppIndexer_UpsertApps(t *testing.T) {
	cluster := &stubCluster{
		indexExist: true,
		bulkReply:  `{"took": 1, "errors": false, "items": [{"index": {"_index": "apps", "_id": "web", "status": 201, "result": "created"}}]}`,
	}
	indexer := newStubIndexer(t, cluster)

	err := indexer.UpsertApps(context.Background(), []domain.App{
		{ID: uuid.New(), Name: "web", Environment: "prod", Version: "12"},
	})
	require.NoError(t, err)

	require.Len(t, cluster.bulkBodies, 1)
	assert.Contains(t, cluster.bulkBodies[0], `"name":"web"`)
	assert.Contains(t, cluster.bulkBodies[0], `"environment":"prod"`)
}

func TestAppIndexer_UpsertApps_ItemFailure(t *testing.T) {
	cluster := &stubCluster{
		indexExist: true,
		bulkReply: `{"took": 1, "errors": true, "items": [{"index": {"_index": "apps", "_id": "web", "status": 400,
			"error": {"type": "mapper_parsing_exception", "reason": "failed to parse field [updated_at]"}}}]}`,
	}
	indexer := newStubIndexer(t, cluster)

	err := indexer.UpsertApps(context.Background(), []domain.App{{ID: uuid.New(), Name: "web"}})
	assert.ErrorContains(t, err, "failed to index 1 out of 1 apps")
}

func TestAppIndexer_UpsertApps_Empty(t *testing.T) {
	cluster := &stubCluster{indexExist: true}
	indexer := newStubIndexer(t, cluster)

	require.NoError(t, indexer.UpsertApps(context.Background(), nil))
	assert.Empty(t, cluster.bulkBodies)
}
