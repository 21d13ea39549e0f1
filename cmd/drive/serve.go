package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drive/internal/games/drive"
	"github.com/vovakirdan/neon-drive/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and drive.

Each SSH connection gets its own session with the variant picker; the
SSH user name is the default driver name. Results are kept in memory for
the life of the server and shared by all sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neon-drive/host_key

Examples:
  drive serve                           # Listen on :23234 with auto-generated key
  drive serve --ssh :2222               # Listen on port 2222
  drive serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "drive-ssh")
	if err != nil {
		return err
	}
	drive.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Runtime.TickRate = flagFPS
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Neon Drive SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
