package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Setenv("SC_TEST_SET", "value")
	t.Setenv("SC_TEST_EMPTY", "")

	assert.Equal(t, "value", Get("SC_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", Get("SC_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", Get("SC_TEST_MISSING", "fallback"))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SC_TEST_FROM_FILE=file\nSC_TEST_PRESET=file\n"), 0o600))

	t.Setenv("ENV_PATH", "")
	t.Setenv("SC_TEST_PRESET", "process")
	t.Cleanup(func() { os.Unsetenv("SC_TEST_FROM_FILE") })

	require.NoError(t, LoadDotEnv("local", path))

	assert.Equal(t, "file", os.Getenv("SC_TEST_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("SC_TEST_PRESET"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.Error(t, LoadDotEnv("", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}

func TestLoadDotEnv_EnvPathWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("SC_TEST_CUSTOM=yes\n"), 0o600))
	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { os.Unsetenv("SC_TEST_CUSTOM") })

	require.NoError(t, LoadDotEnv("local", "does-not-exist.env"))
	assert.Equal(t, "yes", os.Getenv("SC_TEST_CUSTOM"))
}
