// Package config contains global variables that are set according to
// the command line, and the settings file that supplies their
// defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Quiet is true if --quiet was passed on the command line.
var Quiet bool

// Settings are the user defaults read from the settings file. Command
// line flags take precedence over them.
type Settings struct {
	// Output format: "table" or "json".
	Format string `toml:"format"`

	// Whether tables wider than the terminal go through the pager.
	Pager bool `toml:"pager"`

	// Color mode for error messages: "auto", "always" or "never".
	Color string `toml:"color"`
}

// Defaults returns the settings used when there is no settings file.
func Defaults() Settings {
	return Settings{
		Format: "table",
		Pager:  true,
		Color:  "auto",
	}
}

// SettingsPath returns the location of the settings file: the value
// of IOTABLE_CONFIG if set, otherwise iotable/config.toml under the
// user configuration directory.
func SettingsPath() (string, error) {
	if loc, ok := os.LookupEnv("IOTABLE_CONFIG"); ok {
		return loc, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "iotable", "config.toml"), nil
}

// LoadSettings reads the settings file at path. Keys missing from the
// file keep their default values, and a missing file yields
// Defaults().
func LoadSettings(path string) (Settings, error) {
	settings := Defaults()
	md, err := toml.DecodeFile(path, &settings)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("%s: unknown setting %q", path, undecoded[0].String())
	}
	return settings, nil
}
