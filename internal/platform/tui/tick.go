// Package tui is the Bubble Tea frontend: the start menu, the game screen,
// key bindings, the lipgloss renderer and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Frame rate bounds.
const (
	DefaultFPS = 60
	maxFPS     = 240
)

// TickMsg advances the game by one frame. Gen identifies the game screen
// that scheduled it; ticks for any other screen are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// frameDuration returns the time between frames for fps, falling back to
// DefaultFPS for non-positive values.
func frameDuration(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	fps = min(fps, maxFPS)
	return time.Second / time.Duration(fps)
}

// tickCmd schedules the next frame for screen gen.
func tickCmd(fps, gen int) tea.Cmd {
	return tea.Tick(frameDuration(fps), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
