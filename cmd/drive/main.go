// drive is a terminal driving challenge: a start light, a neon slalom and a
// parallel park, against the clock.
//
// Usage:
//
//	drive list              - List available variants
//	drive play [variant]    - Drive a run
//	drive menu              - Pick variant, mode and name interactively
//	drive serve             - Start SSH server for remote play
//	drive config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible layouts
//	--config <path>      - Custom drive.yaml
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write run logs to a file while the TUI is up
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-drive/internal/config"
	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/games/drive"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drive",
	Short: "Neon Drive - an arcade driving challenge in your terminal",
	Long: `Neon Drive is a three-stage driving challenge: launch on green,
weave through the neon slalom, then reverse into the parking bay.
Penalties add seconds to your time; medals and grades follow.

Available commands:
  list     - Show all variants
  play     - Drive a run directly
  menu     - Interactive picker with mode, easy toggle and name
  serve    - Start SSH server for remote play
  config   - Print the effective config as YAML

Examples:
  drive list
  drive play
  drive play drive_classic --mode practice
  drive menu
  drive serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		drive.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom drive.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Run log file for play and menu (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// tuiLogger returns the run logger for full-screen commands. The screen
// owns stderr, so logs go to --log-file or nowhere. The returned close
// function is never nil.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "drive")
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}

// checkConfig fails early on a --config file that does not load. Games
// fall back to the defaults on their own, which would hide the mistake.
func checkConfig() error {
	if _, err := config.LoadDrive(flagConfig); err != nil {
		return err
	}
	return nil
}

// runtimeConfig builds the runtime settings from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if name := os.Getenv("USER"); name != "" {
		cfg.PlayerName = name
	}
	return cfg
}
