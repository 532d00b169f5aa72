// Package config loads settings from defaults, the settings file and
// STEPPER_ environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pluqqy/stepper/pkg/files"
	"github.com/pluqqy/stepper/pkg/models"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "STEPPER"

// Load builds the settings. An explicit path must exist; with an empty path
// the project settings file is used when present.
func Load(path string) (*models.Settings, error) {
	v := newViper()

	switch {
	case path != "":
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	default:
		if _, err := os.Stat(files.SettingsPath()); err == nil {
			v.SetConfigFile(files.SettingsPath())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", files.SettingsPath(), err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &settings, nil
}

// ConfigFileUsed returns the file Load would read for path, or "" when only
// defaults and the environment apply
func ConfigFileUsed(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(files.SettingsPath()); err == nil {
		return files.SettingsPath()
	}
	return ""
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := models.DefaultSettings()
	v.SetDefault("catalog.templates", d.Catalog.Templates)
	v.SetDefault("catalog.placeholder", d.Catalog.Placeholder)
	v.SetDefault("catalog.quotes", d.Catalog.Quotes)
	v.SetDefault("variables", d.Variables)
	v.SetDefault("composer.exclusive_overlays", d.Composer.ExclusiveOverlays)
	v.SetDefault("composer.cancel_discards_edit", d.Composer.CancelDiscardsEdit)
	v.SetDefault("composer.clear_target_on_commit", d.Composer.ClearTargetOnCommit)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.heading", d.Output.Heading)
	v.SetDefault("output.numbered", d.Output.Numbered)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.wrap_width", d.UI.WrapWidth)
	v.SetDefault("ui.max_results", d.UI.MaxResults)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("annotator.boxes", d.Annotator.Boxes)

	// STEPPER_LOG_LEVEL is the short form
	_ = v.BindEnv("logging.level", EnvPrefix+"_LOGGING_LEVEL", EnvPrefix+"_LOG_LEVEL")

	return v
}
