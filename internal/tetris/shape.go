package tetris

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	Long Kind = iota
	J
	L
	Square
	S
	Z
	T
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// String returns the piece name.
func (k Kind) String() string {
	switch k {
	case Long:
		return "Long"
	case J:
		return "J"
	case L:
		return "L"
	case Square:
		return "Square"
	case S:
		return "S"
	case Z:
		return "Z"
	case T:
		return "T"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Kinds returns every piece kind in catalog order.
func Kinds() []Kind {
	return []Kind{Long, J, L, Square, S, Z, T}
}

// Matrix is a square occupancy grid in piece-local coordinates,
// indexed [row][col].
type Matrix [][]bool

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return len(m)
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two matrices have identical occupancy.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Square reports whether every row is as long as the matrix is tall.
func (m Matrix) Square() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

// Occupied returns the local coordinates of every filled cell, row-major.
func (m Matrix) Occupied() []Point {
	var out []Point
	for r, row := range m {
		for c, filled := range row {
			if filled {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// String renders the matrix as rows of '#' and '.' separated by '/'.
func (m Matrix) String() string {
	b := make([]byte, 0, len(m)*(len(m)+1))
	for i, row := range m {
		if i > 0 {
			b = append(b, '/')
		}
		for _, filled := range row {
			if filled {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

// Point is a (row, col) position, either piece-local or on the board.
type Point struct {
	Row, Col int
}

// shapeDef pairs a layout with its display colors.
type shapeDef struct {
	matrix   Matrix
	terminal core.Color
	canvas   color.RGBA
}

// catalog holds the canonical spawn orientation of every kind.
var catalog = [KindCount]shapeDef{
	Long: {
		matrix:   parseMatrix("....", "####", "....", "...."),
		terminal: core.ColorPieceLong,
		canvas:   color.RGBA{0xFF, 0xCC, 0xCC, 0xFF},
	},
	J: {
		matrix:   parseMatrix("#..", "###", "..."),
		terminal: core.ColorPieceJ,
		canvas:   color.RGBA{0xFF, 0xCC, 0xFF, 0xFF},
	},
	L: {
		matrix:   parseMatrix("..#", "###", "..."),
		terminal: core.ColorPieceL,
		canvas:   color.RGBA{0xFF, 0xFF, 0xCC, 0xFF},
	},
	Square: {
		matrix:   parseMatrix("##", "##"),
		terminal: core.ColorPieceSquare,
		canvas:   color.RGBA{0xCC, 0xFF, 0xFF, 0xFF},
	},
	S: {
		matrix:   parseMatrix(".##", "##.", "..."),
		terminal: core.ColorPieceS,
		canvas:   color.RGBA{0xCC, 0xE5, 0xFF, 0xFF},
	},
	Z: {
		matrix:   parseMatrix("##.", ".##", "..."),
		terminal: core.ColorPieceZ,
		canvas:   color.RGBA{0xCC, 0xFF, 0xCC, 0xFF},
	},
	T: {
		matrix:   parseMatrix(".#.", "###", "..."),
		terminal: core.ColorPieceT,
		canvas:   color.RGBA{0xE0, 0xE0, 0xE0, 0xFF},
	},
}

// parseMatrix builds a matrix from rows of '#' (filled) and '.' (empty).
func parseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j := range row {
			m[i][j] = row[j] == '#'
		}
	}
	return m
}

// Shape returns a copy of the spawn matrix for kind together with its
// terminal color. Unknown kinds yield an empty matrix.
func Shape(kind Kind) (Matrix, core.Color) {
	if !kind.Valid() {
		return Matrix{}, core.ColorDefault
	}
	def := catalog[kind]
	return def.matrix.Clone(), def.terminal
}

// TerminalColor returns the terminal palette entry for kind.
func TerminalColor(kind Kind) core.Color {
	if !kind.Valid() {
		return core.ColorDefault
	}
	return catalog[kind].terminal
}

// RGBA returns the canvas color for kind.
func RGBA(kind Kind) color.RGBA {
	if !kind.Valid() {
		return color.RGBA{}
	}
	return catalog[kind].canvas
}

// ValidateCatalog checks that every shape is square and has at least one
// filled cell. A failure is a programming error in the catalog.
func ValidateCatalog() error {
	for _, k := range Kinds() {
		m := catalog[k].matrix
		if m.Size() == 0 {
			return fmt.Errorf("tetris: shape %s is empty", k)
		}
		if !m.Square() {
			return fmt.Errorf("tetris: shape %s is not square", k)
		}
		if len(m.Occupied()) == 0 {
			return fmt.Errorf("tetris: shape %s has no filled cells", k)
		}
	}
	return nil
}
