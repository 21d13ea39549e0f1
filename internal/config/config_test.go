package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadDrive("")
	if err != nil {
		t.Fatalf("LoadDrive: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDriveConfig()) {
		t.Errorf("embedded defaults drifted from DefaultDriveConfig:\n%+v\n%+v", cfg, DefaultDriveConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadDriveCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drive.yaml")
	yml := "vehicle:\n  max_forward: 250\npenalties:\n  cone: 3\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrive(path)
	if err != nil {
		t.Fatalf("LoadDrive: %v", err)
	}
	if cfg.Vehicle.MaxForward != 250 {
		t.Errorf("MaxForward = %v, want 250", cfg.Vehicle.MaxForward)
	}
	if cfg.Penalties.Cone != 3 {
		t.Errorf("Cone = %v, want 3", cfg.Penalties.Cone)
	}
	if cfg.Vehicle.MaxReverse != 170 {
		t.Errorf("unset MaxReverse = %v, want default 170", cfg.Vehicle.MaxReverse)
	}
}

func TestLoadDriveMissingCustom(t *testing.T) {
	if _, err := LoadDrive(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadDriveLocalDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "drive.yaml"), []byte("win:\n  hold_ms: 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrive("")
	if err != nil {
		t.Fatalf("LoadDrive: %v", err)
	}
	if cfg.Win.HoldMs != 600 {
		t.Errorf("HoldMs = %v, want 600 from ./configs", cfg.Win.HoldMs)
	}
}

func TestParseDriveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"negative world", "world:\n  width: -1\n"},
		{"positive bounce", "collision:\n  bounce: 0.5\n"},
		{"bad smoothing", "vehicle:\n  steer_smoothing: cubic\n"},
		{"light delays reversed", "start_light:\n  min_delay_ms: 3000\n  max_delay_ms: 1000\n"},
		{"bounded last medal", "scoring:\n  medals:\n    - { name: GOLD, under: 60 }\n"},
		{"ladder tightens", "scoring:\n  grades:\n    - { name: A, max_penalty: 8 }\n    - { name: B, max_penalty: 3 }\n    - { name: D }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDrive([]byte(tt.yml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseDrive err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestTierMatches(t *testing.T) {
	gold := DefaultDriveConfig().Scoring.Medals[0]

	tests := []struct {
		time, pen float64
		want      bool
	}{
		{59.9, 3, true},
		{60, 0, false},
		{30, 3.5, false},
	}
	for _, tt := range tests {
		if got := gold.Matches(tt.time, tt.pen); got != tt.want {
			t.Errorf("gold.Matches(%v, %v) = %v, want %v", tt.time, tt.pen, got, tt.want)
		}
	}

	if !(Tier{Name: "open"}).Matches(1e9, 1e9) {
		t.Error("unbounded tier must match everything")
	}
}

func TestMarshalDriveParsesBack(t *testing.T) {
	data, err := MarshalDrive(DefaultDriveConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseDrive(data)
	if err != nil {
		t.Fatalf("ParseDrive(marshalled): %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDriveConfig()) {
		t.Error("marshalled config does not parse back to defaults")
	}
}
