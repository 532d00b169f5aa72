package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/stepper/pkg/annotator"
	"github.com/pluqqy/stepper/pkg/catalog"
	"github.com/pluqqy/stepper/pkg/composer"
	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/variables"
)

type sessionState int

const (
	composerView sessionState = iota
	annotatorView
)

// Config wires the application to loaded settings
type Config struct {
	Settings  *models.Settings
	Logger    *zap.Logger
	Annotate  bool               // start in the annotator view
	Clipboard func(string) error // defaults to the system clipboard
}

type App struct {
	state     sessionState
	composer  *ComposerModel
	annotator *AnnotatorModel
	width     int
	height    int
	statusMsg string
}

// NewApp builds both views from the configuration
func NewApp(cfg Config) (*App, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := variables.NewDirectory(settings.Variables)
	if err != nil {
		return nil, fmt.Errorf("failed to load variables: %w", err)
	}
	cat, err := catalog.New(settings.Catalog.Templates)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}

	c := composer.New(composer.OptionsFromSettings(settings, dir, logger))
	cm := NewComposerModel(c, cat, settings, logger)
	if cfg.Clipboard != nil {
		cm.copy = cfg.Clipboard
	}

	state := composerView
	if cfg.Annotate {
		state = annotatorView
	}

	return &App{
		state:     state,
		composer:  cm,
		annotator: NewAnnotatorModel(annotator.FromBoxes(settings.Annotator.Boxes), logger),
	}, nil
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// one line is kept for the status bar
		a.composer.SetSize(msg.Width, msg.Height-1)
		a.annotator.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// unsaved steps live in the composer, so quitting goes through its
		// confirmation
		if a.state == annotatorView && msg.String() == "q" && !a.annotator.confirm.Active() {
			a.annotator.board.End()
			a.state = composerView
			return a, a.composer.quit()
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		a.state = msg.view
		a.statusMsg = ""
		return a, nil

	case tea.MouseMsg:
		if a.state != annotatorView {
			return a, nil
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case composerView:
		var m tea.Model
		m, cmd = a.composer.Update(msg)
		if cm, ok := m.(*ComposerModel); ok {
			a.composer = cm
		}
	case annotatorView:
		var m tea.Model
		m, cmd = a.annotator.Update(msg)
		if am, ok := m.(*AnnotatorModel); ok {
			a.annotator = am
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case annotatorView:
		content = a.annotator.View()
	default:
		content = a.composer.View()
	}

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		content = lipgloss.JoinVertical(lipgloss.Top, content, statusStyle.Render(a.statusMsg))
	}

	return content
}

// StatusMsg sets the status bar text
type StatusMsg string

// SwitchViewMsg moves between the composer and the annotator
type SwitchViewMsg struct {
	view sessionState
}
