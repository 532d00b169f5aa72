package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const logo = "▞▀▖▀▛▘▛▀▘▛▀▖▛▀▖▛▀▘▛▀▖\n▝▀▖ ▌ ▙▄ ▙▄▘▙▄▘▙▄ ▙▄▘\n▝▀  ▘ ▀▀▘▘  ▘  ▀▀▘▘ ▘"

// renderHeader draws the view title on the left and the logo on the right
func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	logoRendered := logoStyle.Render(logo)
	titleRendered := NewViewTitle(title).View()

	gap := width - 2 - lipgloss.Width(titleRendered) - lipgloss.Width(logoRendered)
	if gap < 1 {
		return ContentPaddingStyle.Render(titleRendered)
	}

	return ContentPaddingStyle.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	))
}
