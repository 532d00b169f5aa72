package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/stepper/pkg/composer"
)

func (m *ComposerModel) View() string {
	snap := m.composer.Snapshot()

	var b strings.Builder
	b.WriteString(renderHeader(m.width, "STEP COMPOSER"))
	b.WriteString("\n\n")

	if m.confirm.Active() {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.confirm.View()))
		return b.String()
	}

	b.WriteString(m.renderStepField())
	b.WriteString("\n")
	if snap.SuggestionsOpen {
		b.WriteString(m.renderSuggestions())
		b.WriteString("\n")
	}

	b.WriteString(m.renderSteps(snap))
	b.WriteString("\n")
	if snap.VariablePickerOpen {
		b.WriteString(m.renderPicker())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelp(m.help, m.currentHelp()))
	return b.String()
}

func (m *ComposerModel) currentHelp() bindingHelp {
	switch {
	case m.editing:
		return m.keys.editHelp()
	case m.composer.VariablePickerOpen():
		return m.keys.pickerHelp()
	case m.composer.SuggestionsOpen():
		return m.keys.suggestionHelp()
	}
	return m.keys.mainHelp()
}

// renderStepField draws the input-like field that opens the suggestions
func (m *ComposerModel) renderStepField() string {
	active := m.row == 0
	style := InactiveBorderStyle
	if active {
		style = ActiveBorderStyle
	}

	label := GetActiveHeaderStyle(active).Render("Step")
	hint := PlaceholderStyle.Render("press enter to choose a suggestion")
	width := min(max(m.width-4, 20), 60)

	return ContentPaddingStyle.Render(style.Width(width).Padding(0, 1).Render(label + "  " + hint))
}

func (m *ComposerModel) renderSuggestions() string {
	var b strings.Builder
	b.WriteString(NewViewTitle("Suggestions").View())
	b.WriteString("\n")
	b.WriteString(m.suggestionSearch.View())
	b.WriteString("\n")

	results := m.suggestions()
	if len(results) == 0 {
		b.WriteString(EmptyInactiveStyle.Render("  No matching suggestions"))
	}
	for i, tmpl := range results {
		if i == m.suggestionCursor {
			b.WriteString(SelectedStyle.Render("▸ " + tmpl))
		} else {
			b.WriteString(NormalStyle.Render("  " + tmpl))
		}
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}

	return ContentPaddingStyle.Render(ActiveBorderStyle.Padding(0, 1).Render(b.String()))
}

func (m *ComposerModel) renderSteps(snap composer.State) string {
	if len(snap.Steps) == 0 {
		return ContentPaddingStyle.Render(EmptyInactiveStyle.Render("No steps yet. Press a to add one."))
	}

	wrapWidth := m.settings.UI.WrapWidth
	if wrapWidth <= 0 {
		wrapWidth = max(m.width-4, 20)
	}

	_, focusedPart, hasFocus := m.focusedPart()

	lines := make([]string, 0, len(snap.Steps))
	for i, step := range snap.Steps {
		focusedRow := m.row == i+1

		var line strings.Builder
		if focusedRow {
			line.WriteString(CursorStyle.Render("▸ "))
		} else {
			line.WriteString("  ")
		}
		line.WriteString(HeaderStyle.Render(fmt.Sprintf("%d. ", i+1)))

		for j, part := range step.Parts {
			if m.editing && snap.IsTarget(i, j) {
				line.WriteString(m.editInput.View())
				continue
			}

			text := part.Text
			if text == "" && part.IsEditable() {
				text = "…"
			}
			style := PartStyle(snap.PartState(i, j))
			if focusedRow && hasFocus && j == focusedPart {
				style = style.Underline(true)
			}
			line.WriteString(style.Render(text))
		}

		if focusedRow {
			line.WriteString(DescriptionStyle.Render("  [d] remove"))
		}
		lines = append(lines, wordwrap.String(line.String(), wrapWidth))
	}

	return ContentPaddingStyle.Render(strings.Join(lines, "\n"))
}

func (m *ComposerModel) renderPicker() string {
	var b strings.Builder
	b.WriteString(NewViewTitle("Variables").View())
	b.WriteString("\n")
	b.WriteString(m.variableSearch.View())
	b.WriteString("\n")

	results := m.variables()
	if len(results) == 0 {
		b.WriteString(EmptyInactiveStyle.Render("  No matching variables"))
	}
	for i, v := range results {
		if i == m.variableCursor {
			b.WriteString(SelectedStyle.Render("▸ " + v.Name))
		} else {
			b.WriteString(NormalStyle.Render("  " + v.Name))
		}
		b.WriteString("\n")
	}

	ok := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSuccess)).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1).
		Render("Ok ctrl+o")
	cancel := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorInactive)).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1).
		Render("Cancel esc")
	b.WriteString("\n")
	b.WriteString(ok + " " + cancel)

	return ContentPaddingStyle.Render(ActiveBorderStyle.Padding(0, 1).Render(b.String()))
}
