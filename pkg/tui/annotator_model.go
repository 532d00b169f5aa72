package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/stepper/pkg/annotator"
)

const annotatorTitle = "BOX ANNOTATOR"

// AnnotatorModel lets the mouse drag and resize boxes on a board
type AnnotatorModel struct {
	board   *annotator.Board
	initial []annotator.Rect
	log     *zap.Logger

	keys    keyMap
	help    help.Model
	confirm *ConfirmationModel

	width     int
	height    int
	canvasTop int
}

// NewAnnotatorModel creates the annotator view with the given boxes
func NewAnnotatorModel(rects []annotator.Rect, logger *zap.Logger) *AnnotatorModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(rects) == 0 {
		rects = annotator.Default()
	}

	return &AnnotatorModel{
		board:   annotator.NewBoard(0, 0, rects, logger),
		initial: append([]annotator.Rect(nil), rects...),
		log:     logger,
		keys:    newKeyMap(),
		help:    help.New(),
		confirm: NewConfirmation(),
	}
}

// SetSize fits the board between the header and the help line
func (m *AnnotatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.canvasTop = lipgloss.Height(renderHeader(width, annotatorTitle)) + 1
	m.board.Resize(width, max(height-m.canvasTop-2, annotator.MinSize))
}

// Board exposes the board for callers that read final positions
func (m *AnnotatorModel) Board() *annotator.Board {
	return m.board
}

func (m *AnnotatorModel) Init() tea.Cmd {
	return nil
}

func (m *AnnotatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Switch), key.Matches(msg, m.keys.Dismiss):
			m.board.End()
			return m, func() tea.Msg { return SwitchViewMsg{view: composerView} }
		case key.Matches(msg, m.keys.Reset):
			m.confirm.Show(ConfirmationConfig{
				Message: "Reset boxes to their initial layout?",
				Type:    ConfirmTypeInline,
			}, m.reset, nil)
		}
	}

	return m, nil
}

func (m *AnnotatorModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X, msg.Y-m.canvasTop

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.board.Begin(x, y)
		}
	case tea.MouseActionMotion:
		m.board.Move(x, y)
	case tea.MouseActionRelease:
		if _, active := m.board.Session(); active {
			m.board.Move(x, y)
			return statusCmd(positionsSummary(m.board.End()))
		}
	}
	return nil
}

func (m *AnnotatorModel) reset() tea.Cmd {
	m.board = annotator.NewBoard(m.board.Width, m.board.Height, m.initial, m.log)
	return statusCmd("Boxes reset")
}

func positionsSummary(rects []annotator.Rect) string {
	parts := make([]string, len(rects))
	for i, r := range rects {
		parts[i] = fmt.Sprintf("%d%s", r.ID, r.Position())
	}
	return "Final positions: " + strings.Join(parts, " ")
}

func (m *AnnotatorModel) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.width, annotatorTitle))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.board))
	b.WriteString("\n")

	if m.confirm.Active() {
		b.WriteString(ContentPaddingStyle.Render(m.confirm.View()))
	} else {
		b.WriteString(renderHelp(m.help, m.keys.annotatorHelp()))
	}
	return b.String()
}

type cellStyle int

const (
	cellCanvas cellStyle = iota
	cellBox
	cellActiveBox
	cellLabel
)

type cell struct {
	r     rune
	style cellStyle
}

// renderBoard rasterizes the rectangles in drawing order so later boxes
// cover earlier ones
func renderBoard(board *annotator.Board) string {
	w, h := board.Width, board.Height
	if w <= 0 || h <= 0 {
		return ""
	}

	grid := make([][]cell, h)
	for y := range grid {
		grid[y] = make([]cell, w)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', style: cellCanvas}
			if x%4 == 0 && y%2 == 0 {
				grid[y][x].r = '·'
			}
		}
	}

	session, dragging := board.Session()
	set := func(x, y int, r rune, style cellStyle) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = cell{r: r, style: style}
		}
	}

	for _, r := range board.Rects() {
		style := cellBox
		if dragging && session.ActiveID == r.ID {
			style = cellActiveBox
		}

		right, bottom := r.X+r.Width-1, r.Y+r.Height-1
		for y := r.Y; y <= bottom; y++ {
			for x := r.X; x <= right; x++ {
				var ch rune
				switch {
				case x == right && y == bottom:
					ch = '◢'
				case y == r.Y && x == r.X:
					ch = '┌'
				case y == r.Y && x == right:
					ch = '┐'
				case y == bottom && x == r.X:
					ch = '└'
				case y == r.Y || y == bottom:
					ch = '─'
				case x == r.X || x == right:
					ch = '│'
				default:
					ch = ' '
				}
				set(x, y, ch, style)
			}
		}

		inner := r.Width - 2
		for i, text := range []string{r.Label(), r.Position()} {
			y := r.Y + 1 + i
			if y >= bottom || inner <= 0 {
				break
			}
			runes := []rune(text)
			if len(runes) > inner {
				runes = runes[:inner]
			}
			start := r.X + 1 + (inner-len(runes))/2
			for k, ch := range runes {
				set(start+k, y, ch, cellLabel)
			}
		}
	}

	styles := map[cellStyle]lipgloss.Style{
		cellCanvas:    canvasStyle,
		cellBox:       boxStyle,
		cellActiveBox: activeBoxStyle,
		cellLabel:     boxLabelStyle,
	}

	lines := make([]string, h)
	for y, row := range grid {
		var line strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				run = append(run, c.r)
			}
			line.WriteString(styles[row[start].style].Render(string(run)))
			start = x
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
