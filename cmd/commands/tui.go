package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pluqqy/stepper/internal/cli"
	"github.com/pluqqy/stepper/internal/logging"
	"github.com/pluqqy/stepper/pkg/tui"
)

// isTerminal is replaced in tests
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI(cmd *cobra.Command, annotate bool) error {
	if !isTerminal() {
		return fmt.Errorf("%s needs an interactive terminal; use 'stepper compose' for scripted runs", cmd.CommandPath())
	}

	ctx := cli.NewCommandContext()
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.Config{
		Settings: settings,
		Logger:   ctx.Logger,
		Annotate: annotate,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logging.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
