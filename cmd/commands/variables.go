package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/stepper/internal/cli"
	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/search"
)

// VariablesResult is the structured output of the variables command
type VariablesResult struct {
	Query     string            `json:"query" yaml:"query"`
	Variables []models.Variable `json:"variables" yaml:"variables"`
	Count     int               `json:"count" yaml:"count"`
}

var variablesLimit int

const nameColumnWidth = 40

// NewVariablesCommand creates the variables command
func NewVariablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variables [query]",
		Aliases: []string{"vars"},
		Short:   "Search the global variable directory",
		Long: `Lists the global variables whose names contain the query, ignoring case.
Names starting with the query are listed first.

Examples:
  stepper variables
  stepper variables sh
  stepper vars end -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVariables,
	}

	cmd.Flags().IntVarP(&variablesLimit, "limit", "n", 0, "Maximum number of results (0 for all)")

	return cmd
}

func runVariables(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	dir, err := cli.NewCommandContext().Directory()
	if err != nil {
		return err
	}

	results := search.Limit(dir.Search(query), variablesLimit)
	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, VariablesResult{
			Query:     query,
			Variables: results,
			Count:     len(results),
		})
	}

	if len(results) == 0 {
		cli.PrintInfo("No variables match %s", cli.Quote(query))
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "NAME")
	for _, v := range results {
		table.Row(strconv.Itoa(v.ID), cli.TruncateString(v.Name, nameColumnWidth))
	}
	table.Flush()

	cli.PrintInfo("%s found", formatCount(len(results), "variable"))
	return nil
}
