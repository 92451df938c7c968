package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 320x640 window and start a game.

Controls:
  Left/Right - Move
  Up         - Rotate
  Down       - Soft drop
  Space      - Hard drop
  Esc        - Pause
  R          - Restart

Close the window to quit.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Debug("config loaded", "source", source)

	player := audio.Open(cfg.Audio.Enabled, cfg.Audio.Volume, logger)
	defer player.Close()

	return window.Run(cfg, flagSeed, window.Options{
		Player: player,
		Logger: logger,
	})
}
