package cli

import (
	"go.uber.org/zap"

	"github.com/pluqqy/stepper/internal/logging"
	"github.com/pluqqy/stepper/pkg/catalog"
	"github.com/pluqqy/stepper/pkg/composer"
	"github.com/pluqqy/stepper/pkg/config"
	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/steps"
	"github.com/pluqqy/stepper/pkg/variables"
)

// CommandContext manages settings loading and common command context
type CommandContext struct {
	ConfigPath string
	Settings   *models.Settings
	Logger     *zap.Logger
}

// NewCommandContext creates a command context for the --config flag
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ConfigPath: configPath,
		Logger:     logging.GetLogger(),
	}
}

// LoadSettings loads settings once per command
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	logging.LogConfig(config.ConfigFileUsed(c.ConfigPath), len(settings.Variables), len(settings.Catalog.Templates))
	c.Settings = settings
	return settings, nil
}

// Directory builds the variable directory from settings
func (c *CommandContext) Directory() (*variables.Directory, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	return variables.NewDirectory(settings.Variables)
}

// Catalog builds the suggestion catalog from settings
func (c *CommandContext) Catalog() (*catalog.Catalog, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	return catalog.New(settings.Catalog.Templates)
}

// Tokenizer builds the tokenizer from settings
func (c *CommandContext) Tokenizer() (*steps.Tokenizer, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	return steps.NewTokenizer(settings.Catalog.Placeholder, settings.Catalog.Quotes), nil
}

// NewComposer builds a composer wired to the configured directory and
// tokenizer
func (c *CommandContext) NewComposer() (*composer.Composer, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	dir, err := variables.NewDirectory(settings.Variables)
	if err != nil {
		return nil, err
	}
	return composer.New(composer.OptionsFromSettings(settings, dir, c.Logger)), nil
}
