package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/registry"
	"github.com/vovakirdan/neon-drive/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.neon-drive/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Runtime is the template for each session; size comes from the PTY.
	Runtime core.RuntimeConfig

	// Logger receives session logs. Nil uses a stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Runtime:     core.DefaultConfig(),
	}
}

// SSHServer wraps a Wish SSH server. All sessions share one in-memory
// run history that lives as long as the server.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "drive-ssh",
		})
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open session history", "error", err)
		// Continue without history
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".neon-drive", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := s.config.Runtime
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	cfg.Seed = time.Now().UnixNano()
	cfg.PlayerName = sshSession.User()

	model := NewSessionModel(s.store, cfg)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenResults
)

// SessionModel manages the full flow of one player:
// menu -> game -> menu, with the results screen reachable from the menu.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	results  ResultsModel
	last     *core.RunSummary
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenResults:
		return m.updateResults(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	result := m.menu.result()
	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsResults():
		m.config = result.Config
		m.results = NewResultsModel(m.store, m.last, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenResults
		return m, m.results.Init()

	case result.GameID != "":
		game, err := registry.Create(result.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.menu = NewMenuModel(m.config)
			return m, nil
		}
		m.config = result.Config
		gm := newEmbeddedModel(game, m.store, m.config)
		m.game = &gm
		m.screen = screenGame
		return m, m.game.Init()
	}

	// The menu returns tea.Quit on every exit; inside a session only a
	// real quit may end the program.
	return m, filterQuit(cmd)
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if sum, ok := m.game.Summary(); ok {
		m.last = &sum
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateResults handles updates when the results screen is shown.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.results.Update(msg)
	if resultsModel, ok := newModel.(ResultsModel); ok {
		m.results = resultsModel
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.results.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}
	return m, filterQuit(cmd)
}

// filterQuit swallows a child's quit command.
func filterQuit(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return nil
		}
		return msg
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenResults:
		return m.results.View()
	}
	return m.menu.View()
}
