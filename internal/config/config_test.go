package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestLoadSettingsPartial(t *testing.T) {
	path := writeSettings(t, "format = \"json\"\n")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{Format: "json", Pager: true, Color: "auto"}, settings)
}

func TestLoadSettingsFull(t *testing.T) {
	path := writeSettings(t, "format = \"table\"\npager = false\ncolor = \"never\"\n")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{Format: "table", Pager: false, Color: "never"}, settings)
}

func TestLoadSettingsUnknownKey(t *testing.T) {
	path := writeSettings(t, "colour = \"never\"\n")

	_, err := LoadSettings(path)
	assert.ErrorContains(t, err, "unknown setting \"colour\"")
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := writeSettings(t, "format = \n")

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestSettingsPathFromEnv(t *testing.T) {
	t.Setenv("IOTABLE_CONFIG", "/tmp/custom.toml")

	path, err := SettingsPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", path)
}
