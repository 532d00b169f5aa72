package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/stepper/internal/cli"
	"github.com/pluqqy/stepper/pkg/search"
)

// SuggestionsResult is the structured output of the suggestions command
type SuggestionsResult struct {
	Query     string   `json:"query" yaml:"query"`
	Templates []string `json:"templates" yaml:"templates"`
	Count     int      `json:"count" yaml:"count"`
}

var suggestionsLimit int

// templates longer than this are cut in table output
const templateColumnWidth = 60

// NewSuggestionsCommand creates the suggestions command
func NewSuggestionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggestions [query]",
		Short: "Search the suggestion catalog",
		Long: `Lists the step templates containing the query, ignoring case.

Examples:
  stepper suggestions
  stepper suggestions after`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSuggestions,
	}

	cmd.Flags().IntVarP(&suggestionsLimit, "limit", "n", 0, "Maximum number of results (0 for all)")

	return cmd
}

func runSuggestions(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	cat, err := cli.NewCommandContext().Catalog()
	if err != nil {
		return err
	}

	results := search.Limit(cat.Search(query), suggestionsLimit)
	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, SuggestionsResult{
			Query:     query,
			Templates: results,
			Count:     len(results),
		})
	}

	if len(results) == 0 {
		cli.PrintInfo("No suggestions match %s", cli.Quote(query))
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("#", "TEMPLATE")
	for i, tmpl := range results {
		table.Row(strconv.Itoa(i+1), cli.TruncateString(tmpl, templateColumnWidth))
	}
	table.Flush()

	cli.PrintInfo("%s found", formatCount(len(results), "suggestion"))
	return nil
}
