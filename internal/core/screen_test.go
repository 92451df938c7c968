package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(42, 22)
	assert.Equal(t, 42, s.Width())
	assert.Equal(t, 22, s.Height())
	assert.Equal(t, blank, s.GetCell(41, 21))

	empty := NewScreen(-3, -1)
	assert.Zero(t, empty.Width())
	assert.Zero(t, empty.Height())
	assert.Empty(t, empty.String())
}

func TestScreenSetCellClips(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, '█', ColorPieceT)
	s.SetCell(-1, 0, 'x', ColorText)
	s.SetCell(4, 0, 'x', ColorText)
	s.SetCell(0, 2, 'x', ColorText)

	assert.Equal(t, Cell{Rune: '█', Color: ColorPieceT}, s.GetCell(1, 1))
	assert.Equal(t, '█', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(9, 9))
	assert.Equal(t, "    \n █  ", s.String())
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColor(5, 0, "←/→ move", ColorDim)

	// Runes, not bytes, advance the column; the tail is clipped.
	assert.Equal(t, "     ←/→", s.String())
	assert.Equal(t, ColorDim, s.GetCell(6, 0).Color)
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillRect(NewRect(0, 0, 3, 2), '#', ColorAccent)
	s.Clear()
	assert.Equal(t, "   \n   ", s.String())
	assert.Equal(t, ColorDefault, s.GetCell(2, 1).Color)
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(NewRect(3, 1, 4, 4), '.', ColorDim)
	assert.Equal(t, "     \n   ..\n   ..", s.String())
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorBorder)

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	assert.Equal(t, want, s.String())
	assert.Equal(t, ColorBorder, s.GetCell(5, 3).Color)

	// Boxes smaller than 2x2 draw nothing.
	small := NewScreen(3, 3)
	small.DrawBox(NewRect(0, 0, 1, 3), ColorBorder)
	assert.Equal(t, "   \n   \n   ", small.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 0, "abcd", ColorText)

	s.Resize(4, 2)
	require.Equal(t, 'a', s.Get(0, 0), "same size keeps content")

	s.Resize(6, 3)
	assert.Equal(t, 6, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, ' ', s.Get(0, 0))
}
