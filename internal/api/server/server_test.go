package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/DjordjeVuckovic/ship-console/docs"
	"github.com/stretchr/testify/assert"
)

type stubHealth bool

func (h stubHealth) Healthy(context.Context) bool { return bool(h) }

func TestSetupHealthChecks(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		want    int
	}{
		{name: "healthy", healthy: true, want: http.StatusOK},
		{name: "unhealthy", healthy: false, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "8080"}, stubHealth(tt.healthy)).
				SetupErrorHandler().
				SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSetupOpenApi(t *testing.T) {
	s := New(&Config{Port: "8080"}, nil).SetupOpenApi("/swagger/*")

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/v1/app/{name}"`)
	assert.Contains(t, rec.Body.String(), "Ship Console API")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV_PATH", "/nonexistent/.env")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local,")
	t.Setenv("WEB_ROOT", "/srv/webroot")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CorsOrigins)
	assert.Equal(t, "/srv/webroot", cfg.WebRoot)

	t.Setenv("PORT", "70000")
	_, err = LoadConfig()
	assert.Error(t, err)
}
