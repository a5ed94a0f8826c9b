package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brmask.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
service_name: forms
log_env: Development
paste_delay: 25ms
metrics_namespace: frontend
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "forms", cfg.ServiceName)
	assert.Equal(t, "development", cfg.LogEnv)
	assert.Equal(t, 25*time.Millisecond, cfg.PasteDelay)
	assert.Equal(t, "frontend", cfg.MetricsNamespace)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "paste_delay: 25ms\n")
	t.Setenv("BRMASK_PASTE_DELAY", "40ms")
	t.Setenv("BRMASK_LOG_ENV", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40*time.Millisecond, cfg.PasteDelay)
	assert.Equal(t, "debug", cfg.LogEnv)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errReadFile))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "paste_delay: [oops"))
		assert.ErrorIs(t, err, errDecode)
	})

	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("BRMASK_PASTE_DELAY", "soon")
		_, err := Load("")
		assert.ErrorIs(t, err, errEnvDuration)
	})

	t.Run("unknown log env", func(t *testing.T) {
		_, err := Load(writeFile(t, "log_env: verbose\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "LogEnv=invalid_choice")
	})

	t.Run("negative paste delay", func(t *testing.T) {
		_, err := Load(writeFile(t, "paste_delay: -5ms\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "PasteDelay=")
	})
}

func TestApplyEnv_Lookup(t *testing.T) {
	env := map[string]string{
		"BRMASK_SERVICE_NAME":      "svc",
		"BRMASK_METRICS_NAMESPACE": "ns",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	var cfg Config
	require.NoError(t, applyEnv(&cfg, lookup))
	assert.Equal(t, "svc", cfg.ServiceName)
	assert.Equal(t, "ns", cfg.MetricsNamespace)
	assert.Zero(t, cfg.PasteDelay)
}
