package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/stepper/pkg/composer"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for primary actions
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	EmptyInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)
)

// Step part styles
var (
	staticPartStyle = NormalStyle

	editablePartStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning))

	editedPartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	editingPartStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	boundPartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive))
)

// PartStyle returns the style for a classified part
func PartStyle(state composer.PartState) lipgloss.Style {
	switch state {
	case composer.PartStateEditable:
		return editablePartStyle
	case composer.PartStateEdited:
		return editedPartStyle
	case composer.PartStateEditing:
		return editingPartStyle
	case composer.PartStateBound:
		return boundPartStyle
	default:
		return staticPartStyle
	}
}

// GetActiveHeaderStyle returns the pane header style for the focus state
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// Help border style (always inactive looking)
var HelpBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(ColorInactive))

// Annotator box styles
var (
	boxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	activeBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	boxLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite))

	canvasStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))
)
