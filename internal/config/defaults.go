package config

import (
	_ "embed"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/blockfall.yaml.
func Default() Config {
	rules := tetris.DefaultRules()
	return Config{
		Board: BoardConfig{
			Width:      rules.Width,
			Height:     rules.Height,
			HiddenRows: rules.HiddenRows,
		},
		Scoring: ScoringConfig{
			ClearBase:   rules.Scoring.ClearBase,
			StreakBonus: rules.Scoring.StreakBonus,
		},
		Speed: SpeedConfig{
			FPS:           60,
			BaseInterval:  rules.Speed.BaseInterval,
			PointsPerStep: rules.Speed.PointsPerStep,
			MinInterval:   rules.Speed.MinInterval,
			Progression:   rules.Speed.Progression,
		},
		Render: RenderConfig{
			CellSize: 32,
			Border:   2,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
