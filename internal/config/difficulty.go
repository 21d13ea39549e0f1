package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyContest  DifficultyPreset = "contest"
	DifficultyPractice DifficultyPreset = "practice"
	DifficultyEasy     DifficultyPreset = "easy"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyContest, DifficultyPractice, DifficultyEasy:
		return p, nil
	case "":
		return DifficultyContest, nil
	default:
		return "", fmt.Errorf("%w: unknown preset %q (want contest, practice or easy)", ErrInvalidConfig, s)
	}
}

// DifficultyManager answers per-run difficulty questions from the config:
// penalty scaling and the slalom layout bounds.
type DifficultyManager struct {
	cfg    DriveConfig
	preset DifficultyPreset
}

// NewDifficultyManager creates a manager for the configured preset.
func NewDifficultyManager(cfg DriveConfig) *DifficultyManager {
	preset := cfg.Difficulty.Preset
	if preset == "" {
		preset = DifficultyContest
	}
	return &DifficultyManager{cfg: cfg, preset: preset}
}

// Preset returns the active preset.
func (d *DifficultyManager) Preset() DifficultyPreset {
	return d.preset
}

// Relaxed reports whether penalties are scaled down.
func (d *DifficultyManager) Relaxed() bool {
	return d.preset == DifficultyPractice || d.preset == DifficultyEasy
}

// Easy reports whether the gentler slalom is used.
func (d *DifficultyManager) Easy() bool {
	return d.preset == DifficultyEasy
}

// PenaltyFactor is the multiplier applied to every penalty.
func (d *DifficultyManager) PenaltyFactor() float64 {
	if d.Relaxed() {
		return d.cfg.Difficulty.ReliefFactor
	}
	return 1.0
}

// SlalomLayout returns the cone count and lateral offset range.
func (d *DifficultyManager) SlalomLayout() (cones int, offsetMin, offsetMax float64) {
	s := d.cfg.Slalom
	if d.Easy() {
		return s.EasyCones, s.EasyOffsetMin, s.EasyOffsetMax
	}
	return s.Cones, s.OffsetMin, s.OffsetMax
}

// ApplyDrivePreset sets the preset on cfg.
func ApplyDrivePreset(cfg *DriveConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
}
