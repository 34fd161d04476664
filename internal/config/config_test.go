package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFiles(t *testing.T) []string {
	t.Helper()
	return []string{filepath.Join(t.TempDir(), "missing.env")}
}

func TestNewAppliesDefaults(t *testing.T) {
	homeDir := t.TempDir()

	v, err := New(Options{HomeDir: homeDir, EnvFiles: noEnvFiles(t)})
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAuthURL, cfg.API.AuthURL)
	assert.Equal(t, 5*time.Second, cfg.API.HealthTimeout)
	assert.Equal(t, 30*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, 24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, filepath.Join(homeDir, ".reparafacil"), cfg.Storage.Dir)
	assert.Equal(t, filepath.Join(homeDir, ".reparafacil", "tickets.toml"), cfg.Storage.CachePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Offline)
}

func TestNewReadsConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".reparafacil"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".reparafacil", "config.toml"), []byte(`
[api]
base_url = "http://repairs.local/api/v1/reparaciones/"
health_timeout = "2s"

[monitor]
interval = "1m"
`), 0o600))

	v, err := New(Options{HomeDir: homeDir, EnvFiles: noEnvFiles(t)})
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://repairs.local/api/v1/reparaciones", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.HealthTimeout)
	assert.Equal(t, time.Minute, cfg.Monitor.Interval)
}

func TestNewMalformedConfigFileReturnsError(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".reparafacil"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".reparafacil", "config.toml"), []byte("[api"), 0o600))

	_, err := New(Options{HomeDir: homeDir, EnvFiles: noEnvFiles(t)})
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".reparafacil"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".reparafacil", "config.toml"), []byte(`
[log]
level = "info"
`), 0o600))
	t.Setenv("RF_LOG_LEVEL", "DEBUG")
	t.Setenv("RF_OFFLINE", "true")

	v, err := New(Options{HomeDir: homeDir, EnvFiles: noEnvFiles(t)})
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Offline)
}

func TestNewLoadsDotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RF_API_AUTH_URL=http://auth.local/api/v1/auth\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("RF_API_AUTH_URL") })

	v, err := New(Options{HomeDir: t.TempDir(), EnvFiles: []string{envFile}})
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://auth.local/api/v1/auth", cfg.API.AuthURL)
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	v, err := New(Options{HomeDir: t.TempDir(), EnvFiles: noEnvFiles(t)})
	require.NoError(t, err)
	v.Set(KeyMonitorInterval, "0s")

	_, err = Load(v)
	require.Error(t, err)
	assert.ErrorContains(t, err, "monitor.interval must be positive")
}

func TestLoadRejectsEmptyBaseURL(t *testing.T) {
	v, err := New(Options{HomeDir: t.TempDir(), EnvFiles: noEnvFiles(t)})
	require.NoError(t, err)
	v.Set(KeyAPIBaseURL, "  ")

	_, err = Load(v)
	require.Error(t, err)
	assert.ErrorContains(t, err, "api.base_url is empty")
}

func TestLoadStorageBackend(t *testing.T) {
	v, err := New(Options{HomeDir: t.TempDir(), EnvFiles: noEnvFiles(t)})
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, StorageBackendFile, cfg.Storage.Backend)

	v.Set(KeyStorageBackend, " PASS ")
	cfg, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, StorageBackendPass, cfg.Storage.Backend)

	v.Set(KeyStorageBackend, "keyring")
	_, err = Load(v)
	require.Error(t, err)
	assert.ErrorContains(t, err, "storage.backend")
}
