package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// App manages the full session flow: menu -> game -> menu. It is the
// top-level model for both local and SSH sessions.
type App struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	opts     Options
	menu     MenuModel
	game     *Model
	games    int // Game screens started, used as tick generation
	quitting bool
}

// NewApp creates a session. When skipMenu is set the game starts at once
// with cfg's difficulty.
func NewApp(cfg config.Config, rt core.RuntimeConfig, opts Options, skipMenu bool) App {
	opts = opts.withDefaults()
	a := App{
		cfg:     cfg,
		runtime: rt,
		opts:    opts,
		menu:    NewMenuModel(cfg.Difficulty, rt.ScreenW, rt.ScreenH),
	}
	if skipMenu {
		a.startGame(cfg.Difficulty)
	}
	return a
}

// Init starts the frame clock when the game is already running.
func (a App) Init() tea.Cmd {
	if a.game != nil {
		return a.game.Init()
	}
	return a.menu.Init()
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.runtime.ScreenW = wsm.Width
		a.runtime.ScreenH = wsm.Height
	}

	if a.game != nil {
		return a.updateGame(msg)
	}
	return a.updateMenu(msg)
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		a.menu = menu
	}

	if a.menu.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.menu.Started() {
		a.startGame(a.menu.Difficulty())
		return a, a.game.Init()
	}
	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	if gm, ok := next.(Model); ok {
		a.game = &gm
	}

	if a.game.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.game.BackToMenu() {
		difficulty := a.menu.Difficulty()
		a.game = nil
		a.menu = NewMenuModel(difficulty, a.runtime.ScreenW, a.runtime.ScreenH)
		return a, a.menu.Init()
	}
	return a, cmd
}

// startGame builds a fresh game with the preset applied.
func (a *App) startGame(difficulty config.DifficultyPreset) {
	cfg := a.cfg.WithPreset(difficulty)
	rt := a.runtime
	rt.TickRate = cfg.Speed.FPS
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := tetris.New(cfg.Rules(), tetris.WithLogger(a.opts.Logger))
	model := NewModel(game, rt, a.opts)
	a.games++
	model.gen = a.games
	a.game = &model
	a.opts.Logger.Info("game started", "difficulty", difficulty, "seed", rt.Seed)
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.game != nil {
		return a.game.View()
	}
	return a.menu.View()
}

// InGame reports whether a game screen is active.
func (a App) InGame() bool {
	return a.game != nil
}

// Run starts a local session on the terminal.
func Run(cfg config.Config, rt core.RuntimeConfig, opts Options, skipMenu bool) error {
	p := tea.NewProgram(NewApp(cfg, rt, opts, skipMenu), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
