package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "janggi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nopen_browser: false\ndata_dir: \"\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.False(t, cfg.OpenBrowser)
	assert.Empty(t, cfg.DataDir)
	assert.Equal(t, "./web", cfg.WebDir)
	assert.True(t, cfg.AccessLog)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("JANGGI_ADDR", "127.0.0.1:7000")
	t.Setenv("JANGGI_DATA_DIR", "")
	t.Setenv("JANGGI_OPEN_BROWSER", "false")
	t.Setenv("JANGGI_ACCESS_LOG", "maybe")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
	assert.Equal(t, "./web", cfg.WebDir)
	assert.Empty(t, cfg.DataDir)
	assert.False(t, cfg.OpenBrowser)
	assert.True(t, cfg.AccessLog, "unparseable bool keeps the old value")
}
