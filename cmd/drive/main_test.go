package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-drive/internal/config"
	"github.com/vovakirdan/neon-drive/internal/core"
)

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	want := core.RunSummary{
		Player: "ana", Variant: "drive", Mode: "contest",
		FinalTime: 63.4, Penalty: 2, Medal: "SILVER", Grade: "B",
		Tips: []string{"Hold the brake longer in the bay"},
	}
	if err := writeSummary(path, want); err != nil {
		t.Fatalf("writeSummary: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "final_time: 63.4") {
		t.Errorf("summary YAML missing final_time:\n%s", data)
	}
	var got core.RunSummary
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Player != want.Player || got.Medal != want.Medal || len(got.Tips) != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	tests := []struct {
		name   string
		preset string
		check  func(t *testing.T, cfg config.DriveConfig)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg config.DriveConfig) {
				if cfg.Win.HoldMs != config.DefaultDriveConfig().Win.HoldMs {
					t.Errorf("HoldMs = %v", cfg.Win.HoldMs)
				}
			},
		},
		{
			name:   "easy preset",
			preset: "easy",
			check: func(t *testing.T, cfg config.DriveConfig) {
				if got := config.NewDifficultyManager(cfg).Preset(); got != config.DifficultyEasy {
					t.Errorf("preset = %v, want easy", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagConfig, flagPreset, flagDefaults = "", tt.preset, false
			var out bytes.Buffer
			configCmd.SetOut(&out)

			if err := runConfig(configCmd, nil); err != nil {
				t.Fatalf("runConfig: %v", err)
			}
			cfg, err := config.ParseDrive(out.Bytes())
			if err != nil {
				t.Fatalf("printed config does not parse: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestCheckConfig(t *testing.T) {
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { flagConfig = "" })

	if err := checkConfig(); err == nil {
		t.Error("checkConfig should fail on a missing --config file")
	}
}
