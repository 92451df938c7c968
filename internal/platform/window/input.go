package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockfall/internal/core"
)

// binding maps one key to one game action. Keys are fixed.
type binding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyArrowDown, core.ActionSoftDrop},
	{ebiten.KeySpace, core.ActionHardDrop},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

// KeyFunc reports whether a key went down this tick.
type KeyFunc func(ebiten.Key) bool

// JustPressed is the edge-triggered KeyFunc backed by the real keyboard.
func JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// ReadInput collects this tick's actions into frame. While the game is
// over only restart gets through.
func ReadInput(pressed KeyFunc, frame *core.InputFrame, gameOver bool) {
	for _, b := range bindings {
		if gameOver && b.action != core.ActionRestart {
			continue
		}
		if pressed(b.key) {
			frame.Set(b.action)
		}
	}
}
