package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Options holds the collaborators of a window session.
type Options struct {
	Player audio.Player
	Logger *log.Logger
	Keys   KeyFunc // Defaults to JustPressed
}

// Canvas adapts a tetris.Game to ebiten.Game. Ebitengine calls Update
// and Draw from one goroutine, once per tick and once per frame.
type Canvas struct {
	game   *tetris.Game
	layout Layout
	opts   Options
	frame  core.InputFrame
}

// NewCanvas builds a canvas for cfg with its difficulty preset applied and
// starts a game seeded with seed. A zero seed is replaced by the clock.
func NewCanvas(cfg config.Config, seed int64, opts Options) *Canvas {
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Keys == nil {
		opts.Keys = JustPressed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg = cfg.WithPreset(cfg.Difficulty)
	rules := cfg.Rules()
	game := tetris.New(rules, tetris.WithLogger(opts.Logger))
	game.Reset(core.RuntimeConfig{TickRate: cfg.Speed.FPS, Seed: seed})

	return &Canvas{
		game:   game,
		layout: NewLayout(rules, cfg.Render.CellSize, cfg.Render.Border),
		opts:   opts,
		frame:  core.NewInputFrame(),
	}
}

// Update advances the game by one frame.
func (c *Canvas) Update() error {
	c.frame.Clear()
	ReadInput(c.opts.Keys, &c.frame, c.game.GameOver())

	res := c.game.Step(c.frame)
	if res.Has(core.EventGameOver) {
		c.opts.Logger.Info("game over", "score", res.State.Score)
	}
	audio.PlayResult(c.opts.Player, res)
	return nil
}

// Draw paints the current snapshot.
func (c *Canvas) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, c.layout, c.game.Snapshot())
}

// Layout keeps the logical canvas fixed; Ebitengine scales it to the window.
func (c *Canvas) Layout(_, _ int) (int, int) {
	return c.layout.Size()
}

// State returns the game's current state.
func (c *Canvas) State() core.GameState {
	return c.game.State()
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, seed int64, opts Options) error {
	canvas := NewCanvas(cfg, seed, opts)
	w, h := canvas.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(canvas.game.Title())
	ebiten.SetTPS(cfg.Speed.FPS)

	if err := ebiten.RunGame(canvas); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
