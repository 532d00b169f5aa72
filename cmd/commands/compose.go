package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/stepper/internal/cli"
	"github.com/pluqqy/stepper/pkg/composer"
	"github.com/pluqqy/stepper/pkg/models"
)

// ComposeResult is the structured output of the compose command
type ComposeResult struct {
	Steps    []models.Step `json:"steps" yaml:"steps"`
	Composed string        `json:"composed" yaml:"composed"`
	File     string        `json:"file,omitempty" yaml:"file,omitempty"`
}

var (
	composeFile   string
	composeCopy   bool
	composeFormat string
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// NewComposeCommand creates the compose command
func NewComposeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose <script.yaml|->",
		Short: "Run an action script and print the composed steps",
		Long: `Runs a YAML action script against a fresh composer, the same operations
the interactive editor performs, and prints the resulting steps.

Each action holds exactly one of: open, choose, select, bind, edit, buffer,
commit, cancel_edit, remove, search, dismiss, ok, cancel.

Example script:
  actions:
    - open: true
    - choose: 'Click on "Text" for "Text"'
    - select: {step: 0, part: 2}
    - bind: mahadev
    - edit: {step: 0, part: 6}
    - buffer: Logout
    - commit: true

Examples:
  stepper compose steps.yaml
  cat steps.yaml | stepper compose -
  stepper compose steps.yaml --format markdown --file STEPS.md
  stepper compose steps.yaml --copy`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateScriptPath(args[0])
		},
		RunE: runCompose,
	}

	cmd.Flags().StringVarP(&composeFile, "file", "f", "", "Also write the composed steps to this file")
	cmd.Flags().BoolVarP(&composeCopy, "copy", "c", false, "Copy the composed steps to the clipboard")
	cmd.Flags().StringVar(&composeFormat, "format", "", "Step format: text or markdown (default from settings)")

	return cmd
}

func runCompose(cmd *cobra.Command, args []string) error {
	script, err := loadScript(cmd, args[0])
	if err != nil {
		return err
	}

	ctx := cli.NewCommandContext()
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	c, err := ctx.NewComposer()
	if err != nil {
		return err
	}

	if err := composer.Run(c, script); err != nil {
		return fmt.Errorf("failed to run script: %w", err)
	}

	if composeFormat != "" {
		override := *settings
		override.Output.Format = composeFormat
		settings = &override
	}

	steps := c.Steps()
	content, err := composer.ComposeSteps(steps, settings)
	if err != nil {
		return err
	}

	result := ComposeResult{Steps: steps, Composed: content}

	if composeFile != "" {
		if err := composer.WriteOutput(content, composeFile); err != nil {
			return err
		}
		result.File = composeFile
	}

	if composeCopy {
		if err := writeClipboard(content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	if result.File != "" {
		cli.PrintSuccess("Wrote %s to %s", formatCount(len(steps), "step"), result.File)
	}
	if composeCopy {
		cli.PrintSuccess("%s → clipboard", formatCount(len(steps), "step"))
	}
	return nil
}

func loadScript(cmd *cobra.Command, path string) (*composer.Script, error) {
	if path == "-" {
		return composer.LoadScript(cmd.InOrStdin())
	}
	return composer.LoadScriptFile(path)
}
