package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/stepper/internal/cli"
	"github.com/pluqqy/stepper/pkg/files"
	"github.com/pluqqy/stepper/pkg/models"
)

var initForce bool

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new stepper project",
		Long: `Creates the .stepper folder in the current directory with a settings
file holding the default suggestions, variables, and boxes.

Examples:
  # Create the project
  stepper init

  # Replace an existing settings file without asking
  stepper init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing settings without confirmation")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}

	_, statErr := os.Stat(files.SettingsPath())
	replacing := statErr == nil
	if replacing && !initForce {
		ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", files.SettingsPath()), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			cli.PrintInfo("Kept existing settings")
			return nil
		}
	}

	if files.ProjectExists() {
		cli.PrintInfo("Updating stepper project in %s", cwd)
	} else {
		cli.PrintInfo("Initializing stepper project in %s", cwd)
	}
	if replacing {
		cli.PrintWarning("Replacing %s with default settings", files.SettingsPath())
	}

	if err := files.InitProjectStructure(); err != nil {
		return fmt.Errorf("failed to initialize project structure: %w", err)
	}
	if err := files.WriteSettings(models.DefaultSettings()); err != nil {
		return err
	}

	cli.PrintSuccess("Created %s", files.SettingsPath())
	cli.PrintInfo("Run 'stepper' to start composing steps")
	return nil
}
