package config

import (
	"fmt"
	"strings"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyLanderPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyLanderPreset(cfg *LanderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity *= 0.8
		cfg.Physics.BurnRate *= 0.7
		cfg.Landing.MaxSpeed *= 1.25
		cfg.Landing.MaxTilt *= 1.4
		cfg.Pad.Width *= 1.25
	case DifficultyHard:
		cfg.Physics.Gravity *= 1.2
		cfg.Physics.BurnRate *= 1.3
		cfg.Landing.MaxSpeed *= 0.75
		cfg.Landing.MaxTilt *= 0.7
		cfg.Pad.Width *= 0.75
		cfg.Pad.InnerRadius *= 0.75
		cfg.Pad.OuterRadius *= 0.75
	}
}

// Tuning limits and steps for the in-game adjustment panel.
const (
	GravityStep = 5
	MinGravity  = 0
	MaxGravity  = 100

	ThrustStep = 5
	MinThrust  = 0
	MaxThrust  = 200

	FuelStep = 10
	MinFuel  = 0
	MaxFuel  = 100
)

// Nudge adds delta to v and clamps the result to [lo, hi].
func Nudge(v, delta, lo, hi float64) float64 {
	v += delta
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
