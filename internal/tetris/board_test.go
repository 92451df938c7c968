package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verticalLong returns the Long piece rotated once: a vertical bar in
// matrix column 2.
func verticalLong() Matrix {
	m, _ := Shape(Long)
	return RotateMatrix(m)
}

func TestIsValidPlacement(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	require.NoError(t, b.Fill("J........."))
	square := parseMatrix("##", "##")
	long, _ := Shape(Long)

	tests := []struct {
		name  string
		m     Matrix
		row   int
		col   int
		valid bool
	}{
		{"open space", square, 5, 4, true},
		{"left wall", square, 5, -1, false},
		{"right wall", square, 5, 9, false},
		{"flush right", square, 5, 8, true},
		{"floor", square, 19, 4, false},
		{"on floor", square, 18, 4, true},
		{"overlap", square, 18, 0, false},
		{"next to block", square, 18, 1, true},
		{"hidden rows", square, -2, 4, true},
		{"hidden rows past wall", square, -2, 9, false},
		{"empty matrix rows ignored", long, -1, 3, true},
		{"empty columns may overhang", verticalLong(), 5, -2, true},
		{"filled column past wall", verticalLong(), 5, -3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, b.IsValidPlacement(tc.m, tc.row, tc.col))
		})
	}
}

func TestLockWithoutClear(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	res := b.Lock(Piece{Kind: T, Matrix: parseMatrix(".#.", "###", "..."), Row: 18, Col: 0})

	assert.Zero(t, res.Cleared)
	assert.False(t, res.GameOver)
	assert.Empty(t, res.ClearedRows)

	k, ok := b.Cell(19, 1).Kind()
	assert.True(t, ok)
	assert.Equal(t, T, k)
	assert.True(t, b.Cell(18, 0).Empty())
}

func TestLockClearsRowAndShiftsAbove(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	require.NoError(t, b.Fill(
		"S.........",
		"ZZ........",
		"LLLLLLLLL.",
		"J.J.J.J.J.",
		"TTTT.TTTT.",
	))
	// Row 17 is missing only its last column.
	res := b.Lock(Piece{Kind: Square, Matrix: parseMatrix("#"), Row: 17, Col: 9})

	require.Equal(t, 1, res.Cleared)
	assert.Equal(t, []int{17}, res.ClearedRows)
	assert.False(t, res.GameOver)

	want := strings.Repeat("..........\n", 16) +
		"S.........\n" +
		"ZZ........\n" +
		"J.J.J.J.J.\n" +
		"TTTT.TTTT."
	assert.Equal(t, want, b.String())
}

func TestLockClearsConsecutiveRows(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	require.NoError(t, b.Fill(
		"IIIIIIIII.",
		"OOOOOOOOO.",
	))
	// Vertical bar occupies column 9, rows 16..19.
	res := b.Lock(Piece{Kind: Long, Matrix: verticalLong(), Row: 16, Col: 7})

	require.Equal(t, 2, res.Cleared)
	assert.Equal(t, []int{19, 18}, res.ClearedRows)

	want := strings.Repeat("..........\n", 18) +
		".........I\n" +
		".........I"
	assert.Equal(t, want, b.String())
}

func TestLockClearsNonAdjacentRows(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	require.NoError(t, b.Fill(
		"IIIIIIIII.",
		"JJ........",
		"OOOOOOOOO.",
		"LL........",
	))
	res := b.Lock(Piece{Kind: Long, Matrix: verticalLong(), Row: 16, Col: 7})

	require.Equal(t, 2, res.Cleared)
	assert.Equal(t, []int{18, 16}, res.ClearedRows)

	want := strings.Repeat("..........\n", 18) +
		"JJ.......I\n" +
		"LL.......I"
	assert.Equal(t, want, b.String())
}

func TestLockAboveTopIsGameOver(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	require.NoError(t, b.Fill("J........."))
	before := b.String()

	res := b.Lock(Piece{Kind: Square, Matrix: parseMatrix("##", "##"), Row: -1, Col: 4})

	assert.True(t, res.GameOver)
	assert.Zero(t, res.Cleared)
	assert.Equal(t, before, b.String(), "board must be untouched")
	assert.True(t, b.Cell(0, 4).Empty())
}

func TestBoardCellOutOfRange(t *testing.T) {
	b := NewBoard(4, 4, 2)
	assert.True(t, b.Cell(-3, 0).Empty())
	assert.True(t, b.Cell(4, 0).Empty())
	assert.True(t, b.Cell(0, -1).Empty())
	assert.True(t, b.Cell(0, 4).Empty())

	b.Set(10, 10, Occupied(T))
	assert.Equal(t, "....\n....\n....\n....", b.String())
}

func TestBoardFillErrors(t *testing.T) {
	b := NewBoard(4, 2, 0)
	assert.Error(t, b.Fill("....", "....", "...."))
	assert.Error(t, b.Fill("..."))
	assert.Error(t, b.Fill("..X."))
	assert.NoError(t, b.Fill("IJLO"))
	assert.True(t, b.RowFull(1))
	assert.False(t, b.RowFull(0))
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	require.NoError(t, b.Fill("T........."))
	c := b.Clone()
	c.Set(19, 0, Cell{})

	assert.False(t, b.Cell(19, 0).Empty())
	assert.True(t, c.Cell(19, 0).Empty())
}

func TestRowsReturnsVisibleCopy(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight, DefaultHiddenRows)
	rows := b.Rows()
	require.Len(t, rows, DefaultHeight)
	rows[0][0] = Occupied(T)
	assert.True(t, b.Cell(0, 0).Empty())
}
