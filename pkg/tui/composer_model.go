package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pluqqy/stepper/pkg/catalog"
	"github.com/pluqqy/stepper/pkg/composer"
	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/search"
	"github.com/pluqqy/stepper/pkg/steps"
)

// ComposerModel is the step editor view. All step state lives in the
// composer; the model only tracks cursors and input focus.
type ComposerModel struct {
	composer *composer.Composer
	catalog  *catalog.Catalog
	settings *models.Settings
	log      *zap.Logger

	keys    keyMap
	help    help.Model
	confirm *ConfirmationModel

	suggestionSearch *SearchBar
	variableSearch   *SearchBar
	editInput        textinput.Model

	row              int // 0 is the Step field, i+1 is step i
	partCursor       int // index into the focused step's editable parts
	suggestionCursor int
	variableCursor   int
	editing          bool

	copy func(string) error

	width  int
	height int
}

// NewComposerModel creates the step editor view
func NewComposerModel(c *composer.Composer, cat *catalog.Catalog, settings *models.Settings, logger *zap.Logger) *ComposerModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := help.New()
	h.ShowAll = settings.UI.ShowHelp

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 200

	return &ComposerModel{
		composer:         c,
		catalog:          cat,
		settings:         settings,
		log:              logger.Named("tui"),
		keys:             newKeyMap(),
		help:             h,
		confirm:          NewConfirmation(),
		suggestionSearch: NewSearchBar("Filter suggestions..."),
		variableSearch:   NewSearchBar("Search variables..."),
		editInput:        input,
		copy:             clipboard.WriteAll,
		width:            80,
		height:           24,
	}
}

// SetSize updates the view dimensions
func (m *ComposerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	barWidth := min(width-2, 60)
	m.suggestionSearch.SetWidth(barWidth)
	m.variableSearch.SetWidth(barWidth)
	m.editInput.Width = max(width/3, 10)
}

func (m *ComposerModel) Init() tea.Cmd {
	return nil
}

func (m *ComposerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.clampPartCursor()
		return m, cmd
	}

	// cursor blink and other input messages
	var cmd tea.Cmd
	switch {
	case m.editing:
		m.editInput, cmd = m.editInput.Update(msg)
	case m.variableSearch.Active():
		m.variableSearch, cmd = m.variableSearch.Update(msg)
	case m.suggestionSearch.Active():
		m.suggestionSearch, cmd = m.suggestionSearch.Update(msg)
	}
	return m, cmd
}

func (m *ComposerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	switch {
	case m.editing:
		return m.handleEditKey(msg)
	case m.composer.VariablePickerOpen():
		return m.handlePickerKey(msg)
	case m.composer.SuggestionsOpen():
		return m.handleSuggestionKey(msg)
	}
	return m.handleMainKey(msg)
}

func (m *ComposerModel) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
			m.partCursor = 0
		}

	case key.Matches(msg, m.keys.Down):
		if m.row < m.composer.Len() {
			m.row++
			m.partCursor = 0
		}

	case key.Matches(msg, m.keys.Left):
		if m.partCursor > 0 {
			m.partCursor--
		}

	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.NextPart):
		if m.partCursor < len(m.focusedEditables())-1 {
			m.partCursor++
		}

	case key.Matches(msg, m.keys.Add):
		return m.openSuggestions()

	case key.Matches(msg, m.keys.Select):
		if m.row == 0 {
			return m.openSuggestions()
		}
		return m.selectFocusedPart()

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.Remove):
		if m.row > 0 && m.composer.Dispatch(composer.RemoveStep{Index: m.row - 1}) {
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Copy):
		return m.copySteps()

	case key.Matches(msg, m.keys.Switch):
		return func() tea.Msg { return SwitchViewMsg{view: annotatorView} }

	case key.Matches(msg, m.keys.Dismiss):
		m.composer.Dispatch(composer.DismissOverlays{})
	}

	return nil
}

func (m *ComposerModel) handleSuggestionKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.composer.Dispatch(composer.DismissOverlays{})
		m.suggestionSearch.SetActive(false)
		return nil

	case key.Matches(msg, m.keys.Choose):
		results := m.suggestions()
		if len(results) == 0 {
			return nil
		}
		m.composer.Dispatch(composer.ChooseSuggestion{Template: results[m.suggestionCursor]})
		m.suggestionSearch.SetActive(false)
		m.row = m.composer.Len()
		m.partCursor = 0
		return nil

	case msg.Type == tea.KeyUp:
		if m.suggestionCursor > 0 {
			m.suggestionCursor--
		}
		return nil

	case msg.Type == tea.KeyDown:
		if m.suggestionCursor < len(m.suggestions())-1 {
			m.suggestionCursor++
		}
		return nil
	}

	var cmd tea.Cmd
	m.suggestionSearch, cmd = m.suggestionSearch.Update(msg)
	m.suggestionCursor = clampIndex(m.suggestionCursor, len(m.suggestions()))
	return cmd
}

func (m *ComposerModel) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Ok):
		m.closePicker(true)
		return nil

	case key.Matches(msg, m.keys.Cancel):
		m.closePicker(false)
		return nil

	case key.Matches(msg, m.keys.Bind):
		results := m.variables()
		if len(results) == 0 {
			return nil
		}
		if m.composer.Dispatch(composer.BindVariable{Variable: results[m.variableCursor]}) {
			m.variableSearch.SetActive(false)
		}
		return nil

	case msg.Type == tea.KeyUp:
		if m.variableCursor > 0 {
			m.variableCursor--
		}
		return nil

	case msg.Type == tea.KeyDown:
		if m.variableCursor < len(m.variables())-1 {
			m.variableCursor++
		}
		return nil
	}

	var cmd tea.Cmd
	m.variableSearch, cmd = m.variableSearch.Update(msg)
	m.composer.Dispatch(composer.UpdateSearchQuery{Text: m.variableSearch.Value()})
	m.variableCursor = clampIndex(m.variableCursor, len(m.variables()))
	return cmd
}

func (m *ComposerModel) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Commit):
		m.composer.Dispatch(composer.CommitEdit{})
		m.stopEditing()
		return nil

	case key.Matches(msg, m.keys.Cancel):
		m.composer.Dispatch(composer.CancelEdit{})
		m.stopEditing()
		return nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.composer.Dispatch(composer.UpdateEditBuffer{Text: m.editInput.Value()})
	return cmd
}

func (m *ComposerModel) openSuggestions() tea.Cmd {
	m.composer.Dispatch(composer.OpenSuggestions{})
	if !m.composer.VariablePickerOpen() {
		m.variableSearch.SetActive(false)
	}
	m.suggestionSearch.Reset()
	m.suggestionCursor = 0
	return m.suggestionSearch.SetActive(true)
}

func (m *ComposerModel) selectFocusedPart() tea.Cmd {
	stepIndex, partIndex, ok := m.focusedPart()
	if !ok {
		return nil
	}
	if !m.composer.Dispatch(composer.SelectPart{Step: stepIndex, Part: partIndex}) {
		return nil
	}

	if !m.composer.SuggestionsOpen() {
		m.suggestionSearch.SetActive(false)
	}
	m.variableSearch.Reset()
	m.composer.Dispatch(composer.UpdateSearchQuery{Text: ""})
	m.variableCursor = 0
	return m.variableSearch.SetActive(true)
}

func (m *ComposerModel) closePicker(confirm bool) {
	m.composer.Dispatch(composer.ClosePicker{Confirm: confirm})
	m.variableSearch.SetActive(false)
}

func (m *ComposerModel) beginEdit() tea.Cmd {
	stepIndex, partIndex, ok := m.focusedPart()
	if !ok {
		return nil
	}
	if !m.composer.Dispatch(composer.BeginManualEdit{Step: stepIndex, Part: partIndex}) {
		return nil
	}

	m.variableSearch.SetActive(false)
	m.editInput.SetValue(m.composer.EditBuffer())
	m.editInput.CursorEnd()
	m.editing = true
	return m.editInput.Focus()
}

func (m *ComposerModel) stopEditing() {
	m.editing = false
	m.editInput.Blur()
}

func (m *ComposerModel) quit() tea.Cmd {
	n := m.composer.Len()
	if n == 0 {
		return tea.Quit
	}

	m.confirm.Show(ConfirmationConfig{
		Title:       "Quit",
		Message:     fmt.Sprintf("Discard %d step(s) and quit?", n),
		Warning:     "Steps are not saved between sessions",
		Destructive: true,
		Type:        ConfirmTypeDialog,
	}, func() tea.Cmd {
		return tea.Quit
	}, nil)
	return nil
}

func (m *ComposerModel) copySteps() tea.Cmd {
	content, err := composer.ComposeSteps(m.composer.Steps(), m.settings)
	if err != nil {
		return statusCmd("Nothing to copy")
	}

	if err := m.copy(content); err != nil {
		m.log.Warn("clipboard write failed", zap.Error(err))
		return statusCmd("Clipboard unavailable: " + err.Error())
	}

	return statusCmd(fmt.Sprintf("%d step(s) → clipboard", m.composer.Len()))
}

func (m *ComposerModel) suggestions() []string {
	return search.Limit(m.catalog.Search(m.suggestionSearch.Value()), m.settings.UI.MaxResults)
}

func (m *ComposerModel) variables() []models.Variable {
	return search.Limit(m.composer.SearchResults(), m.settings.UI.MaxResults)
}

// focusedEditables returns the part indexes of the focused step that can be
// edited
func (m *ComposerModel) focusedEditables() []int {
	if m.row == 0 || m.row > m.composer.Len() {
		return nil
	}
	return steps.EditableIndexes(m.composer.Steps()[m.row-1].Parts)
}

func (m *ComposerModel) focusedPart() (stepIndex, partIndex int, ok bool) {
	editables := m.focusedEditables()
	if len(editables) == 0 {
		return 0, 0, false
	}
	return m.row - 1, editables[clampIndex(m.partCursor, len(editables))], true
}

// clampPartCursor keeps partCursor within the focused step's editable parts
func (m *ComposerModel) clampPartCursor() {
	m.partCursor = clampIndex(m.partCursor, len(m.focusedEditables()))
}

func (m *ComposerModel) clampCursor() {
	if m.row > m.composer.Len() {
		m.row = m.composer.Len()
	}
	m.partCursor = 0
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}
