package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docsmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
site:
  title: Example Docs
  description: project docs
source:
  directory: ./content
output:
  directory: ./public
  clean: true
quiet: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Example Docs", cfg.Site.Title)
	require.Equal(t, "./content", cfg.Source.Directory)
	require.Equal(t, "./public", cfg.Output.Directory)
	require.True(t, cfg.Output.Clean)
	require.False(t, cfg.WarningsEnabled())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	require.Equal(t, "Documentation", cfg.Site.Title)
	require.Equal(t, "./docs", cfg.Source.Directory)
	require.Equal(t, "./site", cfg.Output.Directory)
	require.True(t, cfg.WarningsEnabled())
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("DOCS_TITLE", "Expanded Title")
	cfg, err := Load(writeConfig(t, "site:\n  title: ${DOCS_TITLE}\n"))
	require.NoError(t, err)
	require.Equal(t, "Expanded Title", cfg.Site.Title)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsmith.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "My Documentation", cfg.Site.Title)

	// Refuses to overwrite without force.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
