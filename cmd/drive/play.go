package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-drive/internal/config"
	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/games/drive"
	"github.com/vovakirdan/neon-drive/internal/platform/tui"
	"github.com/vovakirdan/neon-drive/internal/registry"
	"github.com/vovakirdan/neon-drive/internal/storage"
)

var (
	flagName    string
	flagMode    string
	flagEasy    bool
	flagSummary string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Drive a run",
	Long: `Start a run of the given variant (default: drive).

Controls:
  A/D, Left/Right   - Steer
  W/Up              - Gas
  S/Down/Space      - Brake
  R/G               - Toggle gear (D/R)
  N/Enter           - Replay after finish
  B/Esc             - Leave
  Q/Ctrl+C          - Quit

Modes:
  contest   - Full penalties
  practice  - Penalties scaled by the relief factor
  --easy    - Wider slalom and relief penalties in any mode

Examples:
  drive play
  drive play drive_classic
  drive play --mode practice --easy
  drive play --name ana --summary ./last-run.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Driver name (default: $USER)")
	playCmd.Flags().StringVar(&flagMode, "mode", "contest", "Mode: contest or practice")
	playCmd.Flags().BoolVar(&flagEasy, "easy", false, "Easy slalom and reduced penalties")
	playCmd.Flags().StringVar(&flagSummary, "summary", "", "Write the last run's summary as YAML to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := drive.VariantNeon.ID
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'drive list' to see variants", variant)
	}

	if err := checkConfig(); err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagMode)
	if err != nil || preset == config.DifficultyEasy {
		return fmt.Errorf("invalid --mode %q (want contest or practice)", flagMode)
	}

	cfg := runtimeConfig()
	cfg.Mode = string(preset)
	cfg.Easy = flagEasy
	if name := strings.TrimSpace(flagName); name != "" {
		cfg.PlayerName = name
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	drive.SetLogger(logger)

	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session history: %v\n", err)
		// Continue without history - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	summary, finished, err := tui.Run(game, store, cfg)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	if !finished {
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.ShareText(summary))
	if flagSummary != "" {
		if err := writeSummary(flagSummary, summary); err != nil {
			return err
		}
	}
	return nil
}

// writeSummary exports a run summary as YAML.
func writeSummary(path string, s core.RunSummary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write summary: %w", err)
	}
	return nil
}
