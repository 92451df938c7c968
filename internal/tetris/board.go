package tetris

import (
	"fmt"
	"strings"
)

// Default board dimensions.
const (
	DefaultWidth      = 10
	DefaultHeight     = 20
	DefaultHiddenRows = 2
)

// Cell is one position on the board: empty, or occupied by a piece kind.
// The zero value is an empty cell.
type Cell struct {
	kind   Kind
	filled bool
}

// Occupied returns a cell holding kind.
func Occupied(kind Kind) Cell {
	return Cell{kind: kind, filled: true}
}

// Empty reports whether the cell holds no block.
func (c Cell) Empty() bool {
	return !c.filled
}

// Kind returns the kind stored in the cell and whether the cell is filled.
func (c Cell) Kind() (Kind, bool) {
	return c.kind, c.filled
}

// Board is the grid of settled blocks.
// Logical rows run from -hidden (above the visible area) to height-1 (the
// floor); columns run from 0 to width-1.
type Board struct {
	width  int
	height int
	hidden int
	rows   [][]Cell // rows[0] is logical row -hidden
}

// LockResult reports the outcome of writing a piece into the board.
type LockResult struct {
	Cleared     int   // Number of rows removed
	ClearedRows []int // Logical indices of the removed rows, bottom to top, as they were at lock time
	GameOver    bool  // The piece did not fully enter the visible area; nothing was written
}

// NewBoard creates an empty board.
func NewBoard(width, height, hidden int) *Board {
	b := &Board{width: width, height: height, hidden: hidden}
	b.rows = make([][]Cell, hidden+height)
	for i := range b.rows {
		b.rows[i] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of visible rows.
func (b *Board) Height() int { return b.height }

// HiddenRows returns the number of rows above row 0.
func (b *Board) HiddenRows() int { return b.hidden }

// Cell returns the cell at a logical position; positions outside the
// board read as empty.
func (b *Board) Cell(row, col int) Cell {
	i := row + b.hidden
	if i < 0 || i >= len(b.rows) || col < 0 || col >= b.width {
		return Cell{}
	}
	return b.rows[i][col]
}

// Set writes a cell at a logical position. Out-of-range positions are ignored.
func (b *Board) Set(row, col int, c Cell) {
	i := row + b.hidden
	if i < 0 || i >= len(b.rows) || col < 0 || col >= b.width {
		return
	}
	b.rows[i][col] = c
}

// IsValidPlacement reports whether matrix can sit with its top-left corner
// at (row, col). Every filled cell must lie between the side walls and above
// the floor; cells in visible rows must also land on empty cells. Cells
// above row 0 only check the walls.
func (b *Board) IsValidPlacement(m Matrix, row, col int) bool {
	for r, line := range m {
		for c, filled := range line {
			if !filled {
				continue
			}
			br, bc := row+r, col+c
			if bc < 0 || bc >= b.width || br >= b.height {
				return false
			}
			if br < 0 {
				continue
			}
			if !b.Cell(br, bc).Empty() {
				return false
			}
		}
	}
	return true
}

// Lock writes the piece into the board and removes completed rows.
//
// If any filled cell of the piece is above row 0 the board is left
// untouched and GameOver is reported.
func (b *Board) Lock(p Piece) LockResult {
	cells := p.Cells()
	for _, pt := range cells {
		if pt.Row < 0 {
			return LockResult{GameOver: true}
		}
	}
	for _, pt := range cells {
		b.Set(pt.Row, pt.Col, Occupied(p.Kind))
	}
	return b.clearFullRows()
}

// RowFull reports whether every column of a logical row is occupied.
func (b *Board) RowFull(row int) bool {
	i := row + b.hidden
	if i < 0 || i >= len(b.rows) {
		return false
	}
	return rowFull(b.rows[i])
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c.Empty() {
			return false
		}
	}
	return true
}

// clearFullRows compacts the board in one pass: every non-full row is kept
// in order and the removed rows are replaced by fresh empty rows at the top
// of the hidden region.
func (b *Board) clearFullRows() LockResult {
	var res LockResult
	kept := make([][]Cell, 0, len(b.rows))
	for i := len(b.rows) - 1; i >= 0; i-- {
		if rowFull(b.rows[i]) {
			res.ClearedRows = append(res.ClearedRows, i-b.hidden)
			continue
		}
		kept = append(kept, b.rows[i])
	}
	res.Cleared = len(res.ClearedRows)
	if res.Cleared == 0 {
		return res
	}

	// kept is bottom-to-top; rebuild top-to-bottom under the fresh rows.
	next := make([][]Cell, 0, len(b.rows))
	for range res.Cleared {
		next = append(next, make([]Cell, b.width))
	}
	for i := len(kept) - 1; i >= 0; i-- {
		next = append(next, kept[i])
	}
	b.rows = next
	return res
}

// Rows returns a copy of the visible rows, top to bottom.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for r := range b.height {
		out[r] = append([]Cell(nil), b.rows[r+b.hidden]...)
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{width: b.width, height: b.height, hidden: b.hidden}
	out.rows = make([][]Cell, len(b.rows))
	for i, row := range b.rows {
		out.rows[i] = append([]Cell(nil), row...)
	}
	return out
}

// Fill loads a layout into the bottom visible rows. Each line is one row,
// '.' is empty and any letter from "IJLOSZT" is a block of that kind
// ('I' is Long, 'O' is Square). Used by tests and fixtures.
func (b *Board) Fill(lines ...string) error {
	if len(lines) > b.height {
		return fmt.Errorf("tetris: layout has %d rows, board has %d", len(lines), b.height)
	}
	top := b.height - len(lines)
	for i, line := range lines {
		if len(line) != b.width {
			return fmt.Errorf("tetris: layout row %d has %d columns, board has %d", i, len(line), b.width)
		}
		for col, ch := range line {
			if ch == '.' {
				b.Set(top+i, col, Cell{})
				continue
			}
			kind, ok := kindFromLetter(ch)
			if !ok {
				return fmt.Errorf("tetris: layout row %d has unknown cell %q", i, ch)
			}
			b.Set(top+i, col, Occupied(kind))
		}
	}
	return nil
}

// String renders the visible rows using the same letters Fill accepts.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.height {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.width {
			cell := b.Cell(r, c)
			if k, ok := cell.Kind(); ok {
				sb.WriteByte(kindLetter(k))
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

const kindLetters = "IJLOSZT"

func kindLetter(k Kind) byte {
	if !k.Valid() {
		return '?'
	}
	return kindLetters[k]
}

func kindFromLetter(ch rune) (Kind, bool) {
	i := strings.IndexRune(kindLetters, ch)
	if i < 0 {
		return 0, false
	}
	return Kind(i), true
}
