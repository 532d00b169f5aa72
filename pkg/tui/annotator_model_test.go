package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/stepper/pkg/annotator"
)

func newTestAnnotator(t *testing.T) *AnnotatorModel {
	t.Helper()
	m := NewAnnotatorModel(annotator.Default(), nil)
	m.SetSize(100, 40)
	require.Greater(t, m.canvasTop, 0)
	return m
}

func mouse(m *AnnotatorModel, action tea.MouseAction, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{
		X:      x,
		Y:      y + m.canvasTop,
		Action: action,
		Button: tea.MouseButtonLeft,
	})
	return cmd
}

func TestAnnotatorModelDrag(t *testing.T) {
	m := newTestAnnotator(t)

	mouse(m, tea.MouseActionPress, 5, 2)
	session, active := m.board.Session()
	require.True(t, active)
	assert.Equal(t, 1, session.ActiveID)
	assert.Equal(t, annotator.ModeMove, session.Mode)

	mouse(m, tea.MouseActionMotion, 10, 3)
	cmd := mouse(m, tea.MouseActionRelease, 15, 2)

	_, active = m.board.Session()
	assert.False(t, active)
	require.NotNil(t, cmd)
	assert.Equal(t,
		StatusMsg("Final positions: 1(12, 1) 2(22, 1) 3(42, 1) 4(2, 8) 5(22, 8)"),
		cmd())
}

func TestAnnotatorModelResize(t *testing.T) {
	m := newTestAnnotator(t)

	// bottom-right cell of box 4
	mouse(m, tea.MouseActionPress, 17, 12)
	session, active := m.board.Session()
	require.True(t, active)
	require.Equal(t, 4, session.ActiveID)
	assert.Equal(t, annotator.ModeResize, session.Mode)

	mouse(m, tea.MouseActionMotion, 3, 9)
	mouse(m, tea.MouseActionRelease, 3, 9)

	r := m.board.Rects()[3]
	assert.Equal(t, annotator.MinSize, r.Width)
	assert.Equal(t, annotator.MinSize, r.Height)
}

func TestAnnotatorModelReleaseWithoutDrag(t *testing.T) {
	m := newTestAnnotator(t)

	mouse(m, tea.MouseActionPress, 80, 30)
	_, active := m.board.Session()
	assert.False(t, active, "empty canvas is not a hit")

	cmd := mouse(m, tea.MouseActionRelease, 80, 30)
	assert.Nil(t, cmd)
}

func TestAnnotatorModelReset(t *testing.T) {
	m := newTestAnnotator(t)
	mouse(m, tea.MouseActionPress, 5, 2)
	mouse(m, tea.MouseActionRelease, 30, 20)
	require.NotEqual(t, annotator.Default()[0], m.board.Rects()[0])

	m.Update(runes("r"))
	require.True(t, m.confirm.Active())
	assert.Contains(t, m.View(), "Reset boxes to their initial layout?")

	_, cmd := m.Update(runes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg("Boxes reset"), cmd())
	assert.Equal(t, annotator.Default(), m.board.Rects())
}

func TestAnnotatorModelSwitchBack(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("v"), escKey} {
		m := newTestAnnotator(t)
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, SwitchViewMsg{view: composerView}, cmd())
	}
}

func TestAnnotatorModelView(t *testing.T) {
	m := newTestAnnotator(t)
	view := m.View()

	assert.Contains(t, view, "BOX ANNOTATOR")
	for _, want := range []string{"Box no. 1", "Box no. 5", "(2, 1)", "(22, 8)", "◢"} {
		assert.Contains(t, view, want)
	}
}

func TestRenderBoard(t *testing.T) {
	board := annotator.NewBoard(12, 5, []annotator.Rect{{ID: 1, X: 0, Y: 0, Width: 12, Height: 4}}, nil)
	lines := strings.Split(renderBoard(board), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "┌──────────┐", lines[0])
	assert.Equal(t, "│Box no. 1 │", lines[1])
	assert.Equal(t, "│  (0, 0)  │", lines[2])
	assert.Equal(t, "└──────────◢", lines[3])
	assert.Equal(t, "·   ·   ·   ", lines[4])
}

func TestRenderBoardUnsized(t *testing.T) {
	assert.Empty(t, renderBoard(annotator.NewBoard(0, 0, annotator.Default(), nil)))
}
