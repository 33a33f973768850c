package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.Server.BaseURL)
	assert.True(t, cfg.UI.VimMode)
	assert.Equal(t, DefaultPageSize, cfg.UI.PageSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.HasValidAuth())
}

func TestLoadFromParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  base_url: https://api.pinetime.example/api/v1
auth:
  api_token: secret
ui:
  vim_mode: false
  page_size: 25
  columns:
    md: 2
    xl: 6
logging:
  level: debug
  file: /tmp/pt.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.pinetime.example/api/v1", cfg.Server.BaseURL)
	assert.True(t, cfg.HasValidAuth())
	assert.False(t, cfg.UI.VimMode)
	assert.Equal(t, 25, cfg.UI.PageSize)
	assert.Equal(t, 2, cfg.UI.Columns.MD)
	assert.Equal(t, 6, cfg.UI.Columns.XL)
	assert.Zero(t, cfg.UI.Columns.XS)
	assert.Equal(t, "debug", cfg.Logging.Level)

	logPath, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pt.log", logPath)
}

func TestLoadFromInvalidPageSizeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  page_size: -3\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.UI.PageSize)
}

func TestLoadFromMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [broken"), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
