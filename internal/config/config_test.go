package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	defer func() {
		_ = os.Chdir(wd)
	}()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.False(t, cfg.Pretty)
	assert.False(t, cfg.ProbeDimensions)
	assert.False(t, cfg.Debug)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docxtract.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: table\npretty: true\nprobe_dimensions: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatTable, cfg.Format)
	assert.True(t, cfg.Pretty)
	assert.True(t, cfg.ProbeDimensions)
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docxtract.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat(FormatJSON))
	assert.NoError(t, ValidateFormat(FormatXLSX))
	assert.NoError(t, ValidateFormat(FormatTable))
	assert.Error(t, ValidateFormat("yaml"))
}
