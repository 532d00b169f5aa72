// Package annotator keeps a set of labelled rectangles on a fixed board and
// moves or resizes one of them during a pointer drag session.
package annotator

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pluqqy/stepper/pkg/models"
)

// MinSize is the smallest width or height a resize can produce
const MinSize = 3

// Rect is a labelled rectangle in board cells
type Rect struct {
	ID     int `json:"id" yaml:"id"`
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// IsCorner reports whether (x, y) is the bottom-right resize handle
func (r Rect) IsCorner(x, y int) bool {
	return x == r.X+r.Width-1 && y == r.Y+r.Height-1
}

// Label is the caption drawn inside the rectangle
func (r Rect) Label() string {
	return fmt.Sprintf("Box no. %d", r.ID)
}

// Position is the coordinate caption drawn under the label
func (r Rect) Position() string {
	return fmt.Sprintf("(%d, %d)", r.X, r.Y)
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (r Rect) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("id", r.ID)
	enc.AddInt("x", r.X)
	enc.AddInt("y", r.Y)
	enc.AddInt("width", r.Width)
	enc.AddInt("height", r.Height)
	return nil
}

type rectArray []Rect

func (a rectArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, r := range a {
		if err := enc.AppendObject(r); err != nil {
			return err
		}
	}
	return nil
}

// Mode is what a drag session does to its rectangle
type Mode int

const (
	ModeMove Mode = iota
	ModeResize
)

// String returns the lowercase name of the mode
func (m Mode) String() string {
	if m == ModeResize {
		return "resize"
	}
	return "move"
}

// Session is an active pointer drag. GrabX and GrabY hold the pointer
// offset from the rectangle origin at press time.
type Session struct {
	ActiveID int
	GrabX    int
	GrabY    int
	Mode     Mode
}

// Board is the annotator canvas
type Board struct {
	Width  int
	Height int

	rects   []Rect
	session *Session
	log     *zap.Logger
}

// NewBoard creates a board holding a copy of rects. A board without a size
// leaves the rectangles untouched until Resize is called.
func NewBoard(width, height int, rects []Rect, logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Board{
		Width:  width,
		Height: height,
		rects:  append([]Rect(nil), rects...),
		log:    logger.Named("annotator"),
	}
	b.clampAll()
	return b
}

// Default returns the five initial rectangles
func Default() []Rect {
	return FromBoxes(models.DefaultBoxes)
}

// FromBoxes converts configured boxes to rectangles
func FromBoxes(boxes []models.Box) []Rect {
	rects := make([]Rect, len(boxes))
	for i, b := range boxes {
		rects[i] = Rect{ID: b.ID, X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}
	return rects
}

// Rects returns a copy of the rectangles in drawing order
func (b *Board) Rects() []Rect {
	return append([]Rect(nil), b.rects...)
}

// Session returns the active drag session, if any
func (b *Board) Session() (Session, bool) {
	if b.session == nil {
		return Session{}, false
	}
	return *b.session, true
}

// Begin starts a drag session on the topmost rectangle under (x, y). A press
// on the bottom-right corner cell resizes; anywhere else moves. It returns
// false when nothing was hit.
func (b *Board) Begin(x, y int) bool {
	for i := len(b.rects) - 1; i >= 0; i-- {
		r := b.rects[i]
		if !r.Contains(x, y) {
			continue
		}

		mode := ModeMove
		if r.IsCorner(x, y) {
			mode = ModeResize
		}
		b.session = &Session{
			ActiveID: r.ID,
			GrabX:    x - r.X,
			GrabY:    y - r.Y,
			Mode:     mode,
		}
		b.log.Debug("drag started", zap.Int("id", r.ID), zap.Stringer("mode", mode))
		return true
	}
	return false
}

// Move applies the pointer position to the active rectangle. Positions are
// kept inside the board; sizes stay between MinSize and the board edge.
func (b *Board) Move(x, y int) bool {
	if b.session == nil {
		return false
	}
	i := b.indexOf(b.session.ActiveID)
	if i < 0 {
		b.session = nil
		return false
	}

	r := &b.rects[i]
	switch b.session.Mode {
	case ModeResize:
		r.Width = clamp(x-r.X+1, MinSize, b.Width-r.X)
		r.Height = clamp(y-r.Y+1, MinSize, b.Height-r.Y)
	default:
		r.X = clamp(x-b.session.GrabX, 0, b.Width-r.Width)
		r.Y = clamp(y-b.session.GrabY, 0, b.Height-r.Height)
	}
	return true
}

// End closes the drag session and returns the final rectangles
func (b *Board) End() []Rect {
	if b.session != nil {
		b.log.Info("final rectangle positions", zap.Array("rects", rectArray(b.rects)))
		b.session = nil
	}
	return b.Rects()
}

// Resize changes the board size and pulls every rectangle back inside it
func (b *Board) Resize(width, height int) {
	b.Width = width
	b.Height = height
	b.clampAll()
}

func (b *Board) clampAll() {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	for i := range b.rects {
		r := &b.rects[i]
		r.Width = clamp(r.Width, MinSize, b.Width)
		r.Height = clamp(r.Height, MinSize, b.Height)
		r.X = clamp(r.X, 0, b.Width-r.Width)
		r.Y = clamp(r.Y, 0, b.Height-r.Height)
	}
}

func (b *Board) indexOf(id int) int {
	for i, r := range b.rects {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// clamp bounds v to [lo, hi], with lo winning when the range is empty
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
