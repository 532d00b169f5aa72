package annotator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testBoard() *Board {
	return NewBoard(60, 20, []Rect{
		{ID: 1, X: 2, Y: 1, Width: 10, Height: 5},
		{ID: 2, X: 8, Y: 3, Width: 10, Height: 5},
	}, nil)
}

func TestBegin(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		wantHit  bool
		wantID   int
		wantMode Mode
		grabX    int
		grabY    int
	}{
		{name: "miss", x: 40, y: 15, wantHit: false},
		{name: "only first", x: 3, y: 2, wantHit: true, wantID: 1, wantMode: ModeMove, grabX: 1, grabY: 1},
		{name: "overlap picks topmost", x: 9, y: 4, wantHit: true, wantID: 2, wantMode: ModeMove, grabX: 1, grabY: 1},
		{name: "corner resizes", x: 17, y: 7, wantHit: true, wantID: 2, wantMode: ModeResize, grabX: 9, grabY: 4},
		{name: "right edge is outside", x: 18, y: 4, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard()
			assert.Equal(t, tt.wantHit, b.Begin(tt.x, tt.y))

			s, active := b.Session()
			require.Equal(t, tt.wantHit, active)
			if !tt.wantHit {
				return
			}
			assert.Equal(t, Session{ActiveID: tt.wantID, GrabX: tt.grabX, GrabY: tt.grabY, Mode: tt.wantMode}, s)
		})
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		wantX  int
		wantY  int
	}{
		{name: "follows pointer minus grab offset", px: 30, py: 10, wantX: 29, wantY: 9},
		{name: "clamped at origin", px: -5, py: -5, wantX: 0, wantY: 0},
		{name: "clamped at far edge", px: 100, py: 100, wantX: 50, wantY: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard()
			require.True(t, b.Begin(3, 2))
			require.True(t, b.Move(tt.px, tt.py))

			r := b.Rects()[0]
			assert.Equal(t, tt.wantX, r.X)
			assert.Equal(t, tt.wantY, r.Y)
			assert.Equal(t, 10, r.Width, "moving keeps the size")
			assert.Equal(t, Rect{ID: 2, X: 8, Y: 3, Width: 10, Height: 5}, b.Rects()[1])
		})
	}
}

func TestResizeDrag(t *testing.T) {
	b := NewBoard(60, 20, []Rect{{ID: 1, X: 2, Y: 1, Width: 10, Height: 5}}, nil)
	require.True(t, b.Begin(11, 5))

	s, _ := b.Session()
	require.Equal(t, ModeResize, s.Mode)

	b.Move(20, 9)
	r := b.Rects()[0]
	assert.Equal(t, 19, r.Width)
	assert.Equal(t, 9, r.Height)

	b.Move(0, 0)
	r = b.Rects()[0]
	assert.Equal(t, MinSize, r.Width)
	assert.Equal(t, MinSize, r.Height)

	b.Move(500, 500)
	r = b.Rects()[0]
	assert.Equal(t, 58, r.Width)
	assert.Equal(t, 19, r.Height)
	assert.Equal(t, 2, r.X, "resizing keeps the origin")
}

func TestMoveWithoutSession(t *testing.T) {
	b := testBoard()
	before := b.Rects()
	assert.False(t, b.Move(30, 10))
	assert.Equal(t, before, b.Rects())
}

func TestEnd(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b := NewBoard(60, 20, Default(), zap.New(core))

	assert.Len(t, b.End(), 5)
	assert.Equal(t, 0, logs.Len(), "ending without a session logs nothing")

	require.True(t, b.Begin(2, 1))
	b.Move(4, 2)
	rects := b.End()

	_, active := b.Session()
	assert.False(t, active)
	assert.Equal(t, 4, rects[0].X)
	assert.Equal(t, 2, rects[0].Y)
	assert.False(t, b.Move(10, 10), "moves after release are ignored")

	entries := logs.FilterMessage("final rectangle positions").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "annotator", entries[0].LoggerName)
}

func TestBoardResize(t *testing.T) {
	b := NewBoard(0, 0, Default(), nil)
	assert.Equal(t, Default(), b.Rects(), "unsized board keeps rectangles")

	b.Resize(30, 10)
	for _, r := range b.Rects() {
		assert.GreaterOrEqual(t, r.X, 0)
		assert.GreaterOrEqual(t, r.Y, 0)
		assert.LessOrEqual(t, r.X+r.Width, 30)
		assert.LessOrEqual(t, r.Y+r.Height, 10)
	}
}

func TestRectCaptions(t *testing.T) {
	r := Rect{ID: 3, X: 42, Y: 1, Width: 16, Height: 5}
	assert.Equal(t, "Box no. 3", r.Label())
	assert.Equal(t, "(42, 1)", r.Position())
	assert.Equal(t, "resize", ModeResize.String())
}
