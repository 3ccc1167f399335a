package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, "scoped", cfg.Scope)
	assert.True(t, cfg.Color)
}

func TestLoadConfig_ExplicitMissingFileFails(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pavlov.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scope: global\ncolor: false\n"), 0644))

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "global", cfg.Scope)
	assert.False(t, cfg.Color)
}

func TestLoadConfig_RejectsInvalidScope(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pavlov.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scope: sideways\n"), 0644))

	_, err := loadConfig(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scope")
}
