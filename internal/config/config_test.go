package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"tldregex/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "tldRegex", cfg.Generator.VarName)
	require.Equal(t, 70, cfg.Generator.Width)
	require.Equal(t, "js", cfg.Generator.Format)
	require.Equal(t, "tlds", cfg.Generator.Package)
	require.False(t, cfg.Generator.ASCII)
	require.False(t, cfg.Generator.RejectEmpty)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("TLDREGEX_WIDTH", "40")
	t.Setenv("TLDREGEX_FORMAT", "go")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Generator.Width)
	require.Equal(t, "go", cfg.Generator.Format)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `environment: development
generator:
  varName: suffixRegex
  width: 20
  rejectEmpty: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "suffixRegex", cfg.Generator.VarName)
	require.Equal(t, 20, cfg.Generator.Width)
	require.True(t, cfg.Generator.RejectEmpty)
	// untouched keys keep their defaults
	require.Equal(t, "js", cfg.Generator.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
