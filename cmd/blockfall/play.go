package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal right away, skipping the start menu.

Controls:
  Left/Right - Move
  Up         - Rotate
  Down       - Soft drop
  Space      - Hard drop
  Esc/P      - Pause
  R          - Restart
  B          - Back to menu (paused or game over)
  Ctrl+S     - Save a screenshot
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, speeds up with score
  normal - Configured speed, speeds up with score
  hard   - Faster start, speeds up with score
  fixed  - No progression

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --seed 42 --mute
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTerminal(true)
	},
}

// runTerminal plays in the current terminal, optionally skipping the menu.
func runTerminal(skipMenu bool) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Debug("config loaded", "source", source)

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("terminal size unknown, using defaults", "err", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Speed.FPS,
		Seed:     flagSeed,
	}

	player := audio.Open(cfg.Audio.Enabled, cfg.Audio.Volume, logger)
	defer player.Close()

	opts := tui.Options{
		Player: player,
		Logger: logger,
	}
	if dir, dirErr := config.HomeDir(); dirErr == nil {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	return tui.Run(cfg, rt, opts, skipMenu)
}
