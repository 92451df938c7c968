package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Starting gravity intervals for the presets that override speed.
const (
	easyInterval  = 50
	hardInterval  = 25
	fixedInterval = 40
)

// Presets returns every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty converts a name into a preset. The empty string is normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: difficulty %q (want easy, normal, hard or fixed): %w", name, ErrInvalid)
}

// Next returns the preset after p, wrapping around.
func (p DifficultyPreset) Next() DifficultyPreset {
	all := Presets()
	for i, known := range all {
		if p == known {
			return all[(i+1)%len(all)]
		}
	}
	return DifficultyNormal
}

// Label returns the display name.
func (p DifficultyPreset) Label() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	case DifficultyFixed:
		return "Fixed"
	default:
		return "Normal"
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the speed section for a difficulty preset and
// records it in cfg. Normal keeps the configured speed.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty = preset
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseInterval = easyInterval
		cfg.Speed.Progression = true
	case DifficultyHard:
		cfg.Speed.BaseInterval = hardInterval
		cfg.Speed.Progression = true
	case DifficultyFixed:
		cfg.Speed.BaseInterval = fixedInterval
		cfg.Speed.Progression = false
	}
}

// WithPreset returns a copy of cfg with preset applied.
func (c Config) WithPreset(preset DifficultyPreset) Config {
	ApplyPreset(&c, preset)
	return c
}
