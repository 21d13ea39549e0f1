package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/games/drive"
	"github.com/vovakirdan/neon-drive/internal/platform/tui"
	"github.com/vovakirdan/neon-drive/internal/registry"
	"github.com/vovakirdan/neon-drive/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the variant picker",
	Long: `Start in interactive menu mode.

Pick a variant, switch mode between contest and practice, toggle easy and
type your driver name. After a run you return to the menu; Tab shows the
runs finished this session.

Controls:
  Up/Down/j/k      - Navigate menu
  Left/Right       - Change setting
  Enter            - Select variant / change setting
  Tab              - Session results
  Q                - Quit

Examples:
  drive menu
  drive menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	drive.SetLogger(logger)

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session history: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	var last *core.RunSummary

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsResults {
			goBack, rErr := tui.RunResults(store, last, cfg.ScreenW, cfg.ScreenH)
			if rErr != nil {
				return rErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh layout each run unless the seed was pinned.
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		summary, finished, err := tui.Run(game, store, runCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if finished {
			last = &summary
		}
	}
}
