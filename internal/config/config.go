// Package config provides YAML-based configuration loading, validation and
// difficulty presets for blockfall.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid value")

// Config contains all tunables of the game and its frontends.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Speed      SpeedConfig      `yaml:"speed"`
	Render     RenderConfig     `yaml:"render"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	HiddenRows int `yaml:"hidden_rows"`
}

// ScoringConfig defines points per clearing lock.
type ScoringConfig struct {
	ClearBase   int `yaml:"clear_base"`
	StreakBonus int `yaml:"streak_bonus"`
}

// SpeedConfig defines the frame clock and gravity progression.
type SpeedConfig struct {
	FPS           int  `yaml:"fps"`
	BaseInterval  int  `yaml:"base_interval"`
	PointsPerStep int  `yaml:"points_per_step"`
	MinInterval   int  `yaml:"min_interval"`
	Progression   bool `yaml:"progression"`
}

// RenderConfig defines presentation options.
type RenderConfig struct {
	CellSize int  `yaml:"cell_size"` // Pixels per cell in the window frontend
	Border   int  `yaml:"border"`    // Dark inset around each cell, pixels
	Ghost    bool `yaml:"ghost"`     // Show the landing position in the terminal
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Base-2 gain exponent, 0 is unchanged
}

// Volume limits.
const (
	MinVolume = -8.0
	MaxVolume = 2.0
)

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
		value any
	}{
		{c.Board.Width >= 4, "board.width", c.Board.Width},
		{c.Board.Height >= 4, "board.height", c.Board.Height},
		{c.Board.HiddenRows >= -tetris.SpawnRow, "board.hidden_rows", c.Board.HiddenRows},
		{c.Scoring.ClearBase >= 0, "scoring.clear_base", c.Scoring.ClearBase},
		{c.Scoring.StreakBonus >= 0, "scoring.streak_bonus", c.Scoring.StreakBonus},
		{c.Speed.FPS > 0 && c.Speed.FPS <= 240, "speed.fps", c.Speed.FPS},
		{c.Speed.MinInterval >= 1, "speed.min_interval", c.Speed.MinInterval},
		{c.Speed.BaseInterval >= c.Speed.MinInterval, "speed.base_interval", c.Speed.BaseInterval},
		{c.Speed.PointsPerStep > 0, "speed.points_per_step", c.Speed.PointsPerStep},
		{c.Render.CellSize >= 4, "render.cell_size", c.Render.CellSize},
		{c.Render.Border >= 0 && c.Render.Border*2 < c.Render.CellSize, "render.border", c.Render.Border},
		{c.Audio.Volume >= MinVolume && c.Audio.Volume <= MaxVolume, "audio.volume", c.Audio.Volume},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s %v: %w", chk.field, chk.value, ErrInvalid)
		}
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}

// Rules converts the configuration into game rules. Difficulty presets
// must already be applied.
func (c Config) Rules() tetris.Rules {
	return tetris.Rules{
		Width:      c.Board.Width,
		Height:     c.Board.Height,
		HiddenRows: c.Board.HiddenRows,
		Scoring: tetris.ScoringRules{
			ClearBase:   c.Scoring.ClearBase,
			StreakBonus: c.Scoring.StreakBonus,
		},
		Speed: tetris.SpeedRules{
			BaseInterval:  c.Speed.BaseInterval,
			PointsPerStep: c.Speed.PointsPerStep,
			MinInterval:   c.Speed.MinInterval,
			Progression:   c.Speed.Progression,
		},
		Ghost: c.Render.Ghost,
	}
}
