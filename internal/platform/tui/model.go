package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/registry"
	"github.com/vovakirdan/neon-drive/internal/storage"
)

// Model is the Bubble Tea model for one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	hold      *holdTracker
	toasts    []toast
	bell      bool
	gameState core.GameState
	summary   *core.RunSummary
	loop      uint64

	// embedded models return to the session menu on Back instead of
	// quitting the program.
	embedded   bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      newHoldTracker(),
		loop:      nextLoop(),
	}
}

// newEmbeddedModel creates a game model that hands control back to a
// session on Back.
func newEmbeddedModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := NewModel(game, store, cfg)
	m.embedded = true
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// The world scales to the viewport, so a resize keeps the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey records presses; the next tick turns them into a frame.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.hold.Press(action, now)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.hold.Frame(now)

	if frame.Has(core.ActionBack) {
		m.hold.Reset()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	m.toasts = expireToasts(m.toasts, now)
	m.toasts, m.bell = pushToasts(m.toasts, result.Events, now)

	if m.gameState.GameOver {
		if !m.runSaved {
			m.recordRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordRun keeps the finished run's summary and adds it to the session
// history.
func (m *Model) recordRun() {
	sum, ok := m.game.Summary()
	if !ok {
		return
	}
	m.summary = &sum
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(sum)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".neon-drive", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	drawToasts(m.screen, m.toasts)

	out := RenderScreen(m.screen)
	if m.bell {
		out = "\a" + out
	}
	return out
}

// Summary returns the last finished run of this model.
func (m Model) Summary() (core.RunSummary, bool) {
	if m.summary == nil {
		return core.RunSummary{}, false
	}
	return *m.summary, true
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game and returns the
// summary of the last run finished in it.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (core.RunSummary, bool, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.RunSummary{}, false, err
	}
	if m, ok := final.(Model); ok {
		sum, done := m.Summary()
		return sum, done, nil
	}
	return core.RunSummary{}, false, nil
}
