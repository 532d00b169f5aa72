package commands

import (
	"github.com/spf13/cobra"
)

// NewAnnotateCommand creates the annotate command
func NewAnnotateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate",
		Short: "Open the box annotator",
		Long: `Opens the box annotator. Drag a box to move it, drag its bottom-right
corner to resize it. Final positions are shown in the status bar and
written to the log at info level.

Boxes start from the annotator section of the settings file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, true)
		},
	}
}
