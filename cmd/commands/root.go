package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pluqqy/stepper/internal/cli"
	"github.com/pluqqy/stepper/internal/logging"
	"github.com/pluqqy/stepper/pkg/config"
	"github.com/pluqqy/stepper/pkg/models"
)

// Global flags
var (
	configFlag   string
	outputFormat string
	quietFlag    bool
	noColorFlag  bool
	logLevelFlag string
	yesFlag      bool
)

// NewRootCommand builds the stepper command tree
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stepper",
		Short: "Compose structured test steps from templated suggestions",
		Long: `Stepper composes structured steps such as 'Click on "Login"' from
templated suggestions. Placeholders in a step can be bound to global
variables or edited by hand.

Running stepper without a subcommand opens the interactive composer.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupCommand,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "Settings file (default .stepper/settings.yaml)")
	flags.StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, or yaml")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational messages")
	flags.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, or error (logs go to the configured file)")
	flags.BoolVarP(&yesFlag, "yes", "y", false, "Answer yes to confirmation prompts")

	cmd.AddCommand(
		NewInitCommand(),
		NewVersionCommand(version),
		NewTokenizeCommand(),
		NewVariablesCommand(),
		NewSuggestionsCommand(),
		NewComposeCommand(),
		NewAnnotateCommand(),
	)

	return cmd
}

func setupCommand(cmd *cobra.Command, args []string) error {
	cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
	cli.SetConfigPath(configFlag)
	cli.SetIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	if noColorFlag {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Settings errors are reported by the command that needs them; logging
	// falls back to the defaults.
	level, file := logLevelFlag, models.DefaultSettings().Logging.File
	if settings, err := config.Load(configFlag); err == nil {
		if level == "" {
			level = settings.Logging.Level
		}
		if settings.Logging.File != "" {
			file = settings.Logging.File
		}
	}

	if err := logging.Initialize(level, file); err != nil {
		return err
	}
	logging.LogCommand(cmd.CommandPath(), args)
	return nil
}

func formatCount(n int, noun string) string {
	return fmt.Sprintf("%d %s(s)", n, noun)
}
