package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/stepper/internal/cli"
	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/steps"
)

// TokenizeResult is the structured output of the tokenize command
type TokenizeResult struct {
	Template string        `json:"template" yaml:"template"`
	Parts    []models.Part `json:"parts" yaml:"parts"`
	Editable []int         `json:"editable" yaml:"editable"`
}

// NewTokenizeCommand creates the tokenize command
func NewTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <template>",
		Short: "Split a template into static and editable parts",
		Long: `Splits a template at its quote characters. Quoted segments equal to the
placeholder become editable parts; everything else is static.

Examples:
  stepper tokenize 'Click on "Text" for "Text"'
  stepper tokenize 'Click on "Text"' -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
}

func runTokenize(cmd *cobra.Command, args []string) error {
	template := args[0]
	if err := cli.ValidateTemplate(template); err != nil {
		return err
	}

	tokenizer, err := cli.NewCommandContext().Tokenizer()
	if err != nil {
		return err
	}

	parts := tokenizer.Tokenize(template)
	result := TokenizeResult{
		Template: template,
		Parts:    parts,
		Editable: steps.EditableIndexes(parts),
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("#", "KIND", "TEXT")
	for i, p := range parts {
		table.Row(strconv.Itoa(i), p.Kind.String(), cli.Quote(p.Text))
	}
	table.Flush()

	cli.PrintInfo("%d part(s), %d editable", len(parts), len(result.Editable))
	return nil
}
