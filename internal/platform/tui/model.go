package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// footerHeight is the number of rows below the game reserved for help.
const footerHeight = 1

// Options holds the collaborators shared by every game screen.
type Options struct {
	Player        audio.Player
	Logger        *log.Logger
	ScreenshotDir string // Empty disables screenshots
}

func (o Options) withDefaults() Options {
	if o.Player == nil {
		o.Player = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	gen        int
	quitting   bool
	backToMenu bool
}

// NewModel creates a game screen. A zero seed is replaced by the clock.
func NewModel(game *tetris.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultFPS
	}

	game.Reset(cfg)
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config:     cfg,
		opts:       opts.withDefaults(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.gameState = game.State()
	return m
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey queues game actions for the next frame and handles the
// screen-level keys immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.Paused || m.gameState.GameOver {
			m.backToMenu = true
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case m.gameState.GameOver && action != core.ActionRestart:
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize only resizes the screen; the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m
}

// handleTick runs one frame with the queued actions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.opts.Logger.Info("game over", "score", m.gameState.Score, "lines", m.gameState.Lines)
	}
	return m, tea.Batch(tickCmd(m.config.TickRate, m.gen), m.playCmd(result))
}

// playCmd hands the frame's sound cues to the audio player off the update
// loop. Returns nil when there is nothing to play.
func (m Model) playCmd(result core.StepResult) tea.Cmd {
	if len(result.Events) == 0 {
		return nil
	}
	player := m.opts.Player
	return func() tea.Msg {
		audio.PlayResult(player, result)
		return nil
	}
}

// saveScreenshot writes the current screen as plain text and returns a
// status line.
func (m Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405.000"))
	path := filepath.Join(m.opts.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorAccent.ANSI()))

// View renders the game followed by the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}

	// The full help is taller than one row; give the game what is left.
	rows := max(m.config.ScreenH-lipgloss.Height(footer), 0)
	if m.screen.Height() != rows {
		m.screen.Resize(m.config.ScreenW, rows)
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the state seen at the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
