package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/stepper/pkg/files"
	"github.com/pluqqy/stepper/pkg/models"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(oldWd) })
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
	assert.Empty(t, ConfigFileUsed(""))
}

func TestLoadProjectFile(t *testing.T) {
	chdirTemp(t)
	writeConfig(t, files.SettingsPath(), `
catalog:
  templates:
    - 'Type "Text" into "Text"'
variables:
  - id: 1
    name: admin
composer:
  cancel_discards_edit: true
`)

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{`Type "Text" into "Text"`}, settings.Catalog.Templates)
	assert.Equal(t, []models.Variable{{ID: 1, Name: "admin"}}, settings.Variables)
	assert.True(t, settings.Composer.CancelDiscardsEdit)
	assert.True(t, settings.Composer.ExclusiveOverlays, "unset keys keep defaults")
	assert.Equal(t, "text", settings.Catalog.Placeholder)
	assert.Equal(t, files.SettingsPath(), ConfigFileUsed(""))
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "output:\n  format: markdown\n  numbered: false\n")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", settings.Output.Format)
	assert.False(t, settings.Output.Numbered)
	assert.Equal(t, path, ConfigFileUsed(path))
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("STEPPER_OUTPUT_FORMAT", "markdown")
	t.Setenv("STEPPER_COMPOSER_EXCLUSIVE_OVERLAYS", "false")
	t.Setenv("STEPPER_LOG_LEVEL", "debug")
	t.Setenv("STEPPER_UI_MAX_RESULTS", "3")

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "markdown", settings.Output.Format)
	assert.False(t, settings.Composer.ExclusiveOverlays)
	assert.Equal(t, "debug", settings.Logging.Level)
	assert.Equal(t, 3, settings.UI.MaxResults)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	dup := filepath.Join(dir, "dup.yaml")
	writeConfig(t, dup, "variables:\n  - {id: 2, name: a}\n  - {id: 2, name: b}\n")
	_, err = Load(dup)
	assert.ErrorIs(t, err, models.ErrDuplicateVariableID)

	quotes := filepath.Join(dir, "quotes.yaml")
	writeConfig(t, quotes, "catalog:\n  quotes: \"\"\n")
	_, err = Load(quotes)
	assert.ErrorIs(t, err, models.ErrNoQuoteCharacters)
}
