// Package window is the Ebitengine frontend: one game on a pixel canvas
// sized to the board, driven at Ebitengine's fixed update rate.
package window

import "github.com/vovakirdan/blockfall/internal/tetris"

// Rect is a pixel rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Layout maps board cells to canvas pixels.
type Layout struct {
	CellSize int
	Border   int
	Cols     int
	Rows     int
}

// NewLayout sizes a canvas for the given rules.
func NewLayout(rules tetris.Rules, cellSize, border int) Layout {
	return Layout{
		CellSize: cellSize,
		Border:   border,
		Cols:     rules.Width,
		Rows:     rules.Height,
	}
}

// Size returns the logical canvas size in pixels.
func (l Layout) Size() (w, h int) {
	return l.Cols * l.CellSize, l.Rows * l.CellSize
}

// Cell returns the full square of a board cell. ok is false for cells
// outside the visible board, including the hidden rows above it.
func (l Layout) Cell(row, col int) (r Rect, ok bool) {
	if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return Rect{}, false
	}
	size := float32(l.CellSize)
	return Rect{X: float32(col) * size, Y: float32(row) * size, W: size, H: size}, true
}

// Fill returns the coloured part of a settled cell, inset by the border.
func (l Layout) Fill(row, col int) (Rect, bool) {
	r, ok := l.Cell(row, col)
	if !ok {
		return r, false
	}
	b := float32(l.Border)
	return Rect{X: r.X + b, Y: r.Y + b, W: r.W - 2*b, H: r.H - 2*b}, true
}

// Active returns the square of an active piece cell, one pixel short so
// neighbouring cells stay visibly separate.
func (l Layout) Active(row, col int) (Rect, bool) {
	r, ok := l.Cell(row, col)
	if !ok {
		return r, false
	}
	r.W--
	r.H--
	return r, true
}
