package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

var (
	backgroundColor = color.RGBA{0xF5, 0xF5, 0xF5, 0xFF}
	outlineColor    = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	hudColor        = color.RGBA{0x20, 0x20, 0x20, 0xFF}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0x99}
	overlayText     = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// HUD text positions, baseline in canvas pixels.
const (
	hudX       = 10
	scoreY     = 10
	levelY     = 30
	lineHeight = 20
)

// drawSnapshot paints one frame. It only reads snap.
func drawSnapshot(dst *ebiten.Image, l Layout, snap tetris.Snapshot) {
	dst.Fill(backgroundColor)

	for row, cells := range snap.Board {
		for col, cell := range cells {
			kind, ok := cell.Kind()
			if !ok {
				continue
			}
			drawSettled(dst, l, row, col, tetris.RGBA(kind))
		}
	}

	if !snap.GameOver {
		c := tetris.RGBA(snap.Piece.Kind)
		for _, p := range snap.Cells {
			// Cells still in the hidden rows are clipped by Active.
			if r, ok := l.Active(p.Row, p.Col); ok {
				fillRect(dst, r, c)
			}
		}
	}

	drawHUD(dst, snap)

	switch {
	case snap.GameOver:
		drawOverlay(dst, l, "Game Over", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case snap.Paused:
		drawOverlay(dst, l, "Paused", "ESC to resume", "R to restart")
	}
}

func drawSettled(dst *ebiten.Image, l Layout, row, col int, c color.Color) {
	outer, ok := l.Cell(row, col)
	if !ok {
		return
	}
	fillRect(dst, outer, outlineColor)
	inner, _ := l.Fill(row, col)
	fillRect(dst, inner, c)
}

func drawHUD(dst *ebiten.Image, snap tetris.Snapshot) {
	drawText(dst, fmt.Sprintf("Score: %d", snap.Score), hudX, scoreY, hudColor)
	drawText(dst, fmt.Sprintf("Level: %d", snap.Level), hudX, levelY, hudColor)
}

func drawOverlay(dst *ebiten.Image, l Layout, lines ...string) {
	w, h := l.Size()
	fillRect(dst, Rect{W: float32(w), H: float32(h)}, overlayColor)

	top := h/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		x := (w - textWidth(line)) / 2
		drawText(dst, line, x, top+i*lineHeight, overlayText)
	}
}

func fillRect(dst *ebiten.Image, r Rect, c color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, false)
}

// drawText draws s with its top-left corner near (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	face := basicfont.Face7x13
	text.Draw(dst, s, face, x, y+face.Ascent, c)
}

func textWidth(s string) int {
	return len([]rune(s)) * basicfont.Face7x13.Advance
}
