package config

import (
	"errors"
	"testing"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyContest, false},
		{"contest", DifficultyContest, false},
		{" Practice ", DifficultyPractice, false},
		{"EASY", DifficultyEasy, false},
		{"hard", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParsePreset(%q) err = %v, want ErrInvalidConfig", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestDifficultyManager(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		factor    float64
		cones     int
		offsetMax float64
	}{
		{DifficultyContest, 1.0, 8, 78},
		{DifficultyPractice, 0.6, 8, 78},
		{DifficultyEasy, 0.6, 6, 52},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultDriveConfig()
			ApplyDrivePreset(&cfg, tt.preset)
			dm := NewDifficultyManager(cfg)

			if got := dm.PenaltyFactor(); got != tt.factor {
				t.Errorf("PenaltyFactor() = %v, want %v", got, tt.factor)
			}
			cones, _, offsetMax := dm.SlalomLayout()
			if cones != tt.cones || offsetMax != tt.offsetMax {
				t.Errorf("SlalomLayout() = %d/%v, want %d/%v", cones, offsetMax, tt.cones, tt.offsetMax)
			}
		})
	}
}

func TestDifficultyManagerEmptyPreset(t *testing.T) {
	cfg := DefaultDriveConfig()
	cfg.Difficulty.Preset = ""
	if got := NewDifficultyManager(cfg).Preset(); got != DifficultyContest {
		t.Errorf("empty preset resolved to %q, want contest", got)
	}
}
