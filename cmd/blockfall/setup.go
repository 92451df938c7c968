package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/logging"
)

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, source, err
		}
		cfg.Difficulty = preset
	}
	if flagFPS > 0 {
		cfg.Speed.FPS = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// newLogger builds the logger for a command. Full-screen frontends own the
// terminal, so they log only to --log-file.
func newLogger(stderr bool) (*log.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Stderr: stderr,
		Prefix: "blockfall",
	})
}
