package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookup at an empty temp dir and clears env overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvDBDriver, "")
	t.Setenv(EnvDBDSN, "")
	t.Setenv(EnvThemeFile, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "dacite")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "ctrl+s", defaults.Submit)
	assert.Equal(t, "esc", defaults.Cancel)
	assert.Equal(t, "ctrl+n", defaults.ToggleNewRef)
	assert.Equal(t, "ctrl+c", defaults.Quit)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, "ctrl+s", cfg.KeyMappings.Submit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.Equal(t, "#874BFD", cfg.ColorScheme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `database:
  driver: postgres
  dsn: postgres://geo@localhost/strat
key_mappings:
  submit: "ctrl+w"
theme:
  preset: wave
  accent: "#FF0000"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://geo@localhost/strat", cfg.Database.DSN)
	assert.Equal(t, "ctrl+w", cfg.KeyMappings.Submit)
	// unspecified values fall back to defaults
	assert.Equal(t, "esc", cfg.KeyMappings.Cancel)
	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#7E9CD8", cfg.ColorScheme.Title, "title should come from the wave preset")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database: [unterminated")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database:\n  driver: sqlite\n  dsn: /tmp/a.db\n")
	t.Setenv(EnvDBDriver, "postgres")
	t.Setenv(EnvDBDSN, "postgres://localhost/other")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/other", cfg.Database.DSN)
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themeFile, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
`), 0o644))
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	assert.NotEmpty(t, cfg.ColorScheme.Delete, "other colors keep their defaults")
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{
		Database:    Database{Driver: "sqlite", DSN: "/tmp/cols.db"},
		KeyMappings: KeyMappings{Submit: "ctrl+w"},
	}
	cfg.applyDefaults()
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(dir, "dacite", "config.yaml"))
	require.NoError(t, err)

	cfg2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ctrl+w", cfg2.KeyMappings.Submit)
	assert.Equal(t, "/tmp/cols.db", cfg2.Database.DSN)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, DefaultKeyMappings(), cfg.KeyMappings)
}
