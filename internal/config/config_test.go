package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, time.Duration(0), cfg.HTTP.Timeout)
	assert.Equal(t, "signup", cfg.Telemetry.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SIGNUP_ENDPOINT", "http://localhost:9999/form")
	t.Setenv("SIGNUP_HTTP_TIMEOUT", "5s")
	t.Setenv("SIGNUP_LOG_FILE", "/tmp/signup.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/form", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "/tmp/signup.log", cfg.Log.File)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signup.yml")
	yml := "environment: production\nendpoint: http://example.test/form\nhttp:\n  timeout: 3s\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "http://example.test/form", cfg.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
