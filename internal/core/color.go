package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes so the same palette renders on
// any terminal that lipgloss can drive.
type Color uint8

// Palette used by the playfield, the HUD and the overlays.
const (
	ColorDefault Color = iota
	ColorBorder
	ColorText
	ColorAccent
	ColorDim
	ColorGhost
	ColorOverlay
	ColorPieceLong
	ColorPieceJ
	ColorPieceL
	ColorPieceSquare
	ColorPieceS
	ColorPieceZ
	ColorPieceT
)

// ansiCodes holds the 256-color code for each palette entry.
// The piece entries approximate the pastel canvas colors.
var ansiCodes = map[Color]string{
	ColorBorder:      "245",
	ColorText:        "15",
	ColorAccent:      "11",
	ColorDim:         "238",
	ColorGhost:       "240",
	ColorOverlay:     "11",
	ColorPieceLong:   "217",
	ColorPieceJ:      "225",
	ColorPieceL:      "230",
	ColorPieceSquare: "195",
	ColorPieceS:      "153",
	ColorPieceZ:      "194",
	ColorPieceT:      "254",
}

// ANSI returns the 256-color code for the color, or "" for the
// terminal default.
func (c Color) ANSI() string {
	return ansiCodes[c]
}

// Palette returns every color that has an explicit terminal code.
func Palette() []Color {
	out := make([]Color, 0, len(ansiCodes))
	for c := ColorBorder; c <= ColorPieceT; c++ {
		out = append(out, c)
	}
	return out
}
