package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Terminal layout. Each board cell is two characters wide so blocks look
// square in a typical terminal font.
const (
	cellChars  = 2
	panelGap   = 2
	panelWidth = 18
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// MinScreenSize returns the smallest terminal that fits the well and the
// side panel for the given rules.
func MinScreenSize(r Rules) (w, h int) {
	return r.Width*cellChars + 2 + panelGap + panelWidth, r.Height + 2
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	RenderSnapshot(dst, g.Snapshot(), g.rules)
}

// RenderSnapshot draws a snapshot. It only reads its arguments.
func RenderSnapshot(dst *core.Screen, snap Snapshot, rules Rules) {
	minW, minH := MinScreenSize(rules)
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			"Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	// Center the well and panel as a group
	originX := (dst.Width() - minW) / 2
	originY := (dst.Height() - minH) / 2
	well := core.NewRect(originX, originY, snap.Width*cellChars+2, snap.Height+2)

	dst.DrawBox(well, core.ColorBorder)
	renderBoard(dst, well, snap)
	if rules.Ghost && !snap.GameOver {
		renderPiece(dst, well, snap.Piece, snap.GhostRow, GhostChar, core.ColorGhost)
	}
	if !snap.GameOver {
		renderPiece(dst, well, snap.Piece, snap.Piece.Row, BlockChar, TerminalColor(snap.Piece.Kind))
	}
	renderPanel(dst, well.Right()+panelGap, well.Y, snap)

	switch {
	case snap.GameOver:
		renderOverlay(dst, well, "Game Over", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case snap.Paused:
		renderOverlay(dst, well, "Paused", "ESC to resume", "R to restart")
	}
}

// renderBoard draws settled cells inside the well.
func renderBoard(dst *core.Screen, well core.Rect, snap Snapshot) {
	inner := well.Inset(1)
	for r, row := range snap.Board {
		for c, cell := range row {
			x := inner.X + c*cellChars
			y := inner.Y + r
			if kind, ok := cell.Kind(); ok {
				drawBlock(dst, x, y, BlockChar, TerminalColor(kind))
				continue
			}
			dst.SetCell(x, y, ' ', core.ColorDefault)
			dst.SetCell(x+1, y, EmptyChar, core.ColorDim)
		}
	}
}

// renderPiece draws the piece's matrix with its top-left corner at row.
// Cells outside the well, such as the hidden rows, are clipped.
func renderPiece(dst *core.Screen, well core.Rect, p Piece, row int, ch rune, color core.Color) {
	inner := well.Inset(1)
	for _, pt := range p.Matrix.Occupied() {
		x := inner.X + (p.Col+pt.Col)*cellChars
		y := inner.Y + row + pt.Row
		if !inner.Contains(x, y) {
			continue
		}
		drawBlock(dst, x, y, ch, color)
	}
}

func drawBlock(dst *core.Screen, x, y int, ch rune, color core.Color) {
	for i := range cellChars {
		dst.SetCell(x+i, y, ch, color)
	}
}

// renderPanel draws the HUD to the right of the well.
func renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawTextColor(x, y, "B L O C K F A L L", core.ColorAccent)

	stats := []struct {
		label string
		value int
	}{
		{"Score", snap.Score},
		{"Level", snap.Level},
		{"Lines", snap.Lines},
		{"Pieces", snap.Pieces},
	}
	for i, s := range stats {
		dst.DrawTextColor(x, y+2+i*2, s.label, core.ColorBorder)
		dst.DrawTextColor(x, y+3+i*2, fmt.Sprintf("%d", s.value), core.ColorText)
	}

	if snap.Streak > 1 {
		dst.DrawTextColor(x, y+11, fmt.Sprintf("Streak x%d", snap.Streak), core.ColorAccent)
	}

	controls := []string{
		"←/→  move",
		"↑    rotate",
		"↓    soft drop",
		"spc  hard drop",
		"esc  pause",
		"r    restart",
	}
	top := y + snap.Height + 2 - len(controls)
	for i, line := range controls {
		dst.DrawTextColor(x, top+i, line, core.ColorDim)
	}
}

// renderOverlay draws a centered box with one line of text per row,
// leaving a blank row between lines.
func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := core.Clamp(maxLen+4, 0, max(area.W, 0))
	boxH := len(lines)*2 + 1
	box := core.CenteredRect(boxW, boxH, area.W, area.H)
	box.X += area.X
	box.Y += area.Y

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorOverlay)
	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		color := core.ColorText
		if i == 0 {
			color = core.ColorOverlay
		}
		dst.DrawTextColor(x, box.Y+1+i*2, l, color)
	}
}
