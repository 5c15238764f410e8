package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Catalog.Cache)
	assert.Equal(t, 300, cfg.Catalog.CacheTTLSeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Catalog.URL = "https://catalog.example.com"
	require.NoError(t, SaveConfig(original, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, loaded.Server.Port)
	assert.Equal(t, "https://catalog.example.com", loaded.Catalog.URL)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/does/not/exist.json")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PIPECHECK_CATALOG_URL", "https://override.example.com")
	t.Setenv("PIPECHECK_PORT", "7070")
	t.Setenv("PIPECHECK_LOG_LEVEL", "debug")

	cfg := DefaultConfig()

	assert.Equal(t, "https://override.example.com", cfg.Catalog.URL)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
