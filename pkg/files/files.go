package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/stepper/pkg/models"
)

const (
	StepperDir        = ".stepper"
	ScriptsDir        = "scripts"
	SettingsFile      = "settings.yaml"
	LogFile           = "stepper.log"
	DefaultOutputFile = "STEPS.md"
)

// SettingsPath returns the project settings file location
func SettingsPath() string {
	return filepath.Join(StepperDir, SettingsFile)
}

// ProjectExists reports whether the current directory has a .stepper directory
func ProjectExists() bool {
	info, err := os.Stat(StepperDir)
	return err == nil && info.IsDir()
}

func InitProjectStructure() error {
	dirs := []string{
		StepperDir,
		filepath.Join(StepperDir, ScriptsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// WriteSettings writes settings to the project settings file
func WriteSettings(settings *models.Settings) error {
	return WriteSettingsTo(SettingsPath(), settings)
}

// WriteSettingsTo validates settings and writes them to path atomically
func WriteSettingsTo(path string, settings *models.Settings) error {
	if settings == nil {
		return fmt.Errorf("cannot write settings: nil settings provided")
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	// Write atomically
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// WriteFile writes content to a file (for STEPS.md output)
func WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
