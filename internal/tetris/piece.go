package tetris

import "math"

// SpawnRow is the row new pieces start on, inside the hidden region.
const SpawnRow = -2

// Piece is the active falling piece: its kind, current orientation and the
// board position of its matrix's top-left corner.
type Piece struct {
	Kind   Kind
	Matrix Matrix
	Row    int
	Col    int
}

// SpawnPiece places kind's spawn matrix horizontally centered on a board
// of the given width, at SpawnRow.
func SpawnPiece(kind Kind, boardWidth int) Piece {
	m, _ := Shape(kind)
	return Piece{
		Kind:   kind,
		Matrix: m,
		Row:    SpawnRow,
		Col:    SpawnColumn(boardWidth, m.Size()),
	}
}

// SpawnColumn returns floor(boardWidth/2 - ceil(size/2)).
func SpawnColumn(boardWidth, size int) int {
	return int(math.Floor(float64(boardWidth)/2 - math.Ceil(float64(size)/2)))
}

// RotateMatrix returns m turned 90 degrees clockwise:
// out[i][j] = m[N-j][i] with N = size-1. m is not modified.
func RotateMatrix(m Matrix) Matrix {
	n := len(m) - 1
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]bool, len(m))
		for j := range m {
			out[i][j] = m[n-j][i]
		}
	}
	return out
}

// Cells returns the board positions of the piece's filled cells.
func (p Piece) Cells() []Point {
	local := p.Matrix.Occupied()
	for i := range local {
		local[i].Row += p.Row
		local[i].Col += p.Col
	}
	return local
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Matrix = p.Matrix.Clone()
	return p
}
