package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDecodesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := "defaultSeverity: error\nformats:\n  email: false\ncollectComments: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.DefaultSeverity)
	assert.True(t, cfg.CollectComments)
	assert.False(t, cfg.FormatEnabled("email"))
	assert.True(t, cfg.FormatEnabled("uri"))
}

func TestFormatEnabledNilConfig(t *testing.T) {
	var cfg *Config
	assert.True(t, cfg.FormatEnabled("email"))
}

func TestFormatEnabledNoFormatsMap(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.FormatEnabled("email"))
}
