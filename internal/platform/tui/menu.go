package tui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/registry"
)

const maxNameLen = 16

// modes the menu cycles through.
var modes = []string{"contest", "practice"}

// MenuModel is the Bubble Tea model for the variant picker. Below the
// variants sit three settings rows: mode, easy and driver name.
type MenuModel struct {
	items        []registry.Info
	cursor       int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	quitting     bool
	selected     *registry.Info // Set when user selects a variant
	wantsResults bool           // True if user pressed Tab for results
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	if cfg.Mode == "" {
		cfg.Mode = modes[0]
	}
	return MenuModel{
		items:     registry.List(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) modeRow() int { return len(m.items) }
func (m MenuModel) easyRow() int { return len(m.items) + 1 }
func (m MenuModel) nameRow() int { return len(m.items) + 2 }

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.cursor == m.nameRow() && m.editName(msg) {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// editName consumes keys typed on the name row. Arrows, Enter, Tab, Esc
// and Ctrl+C still navigate.
func (m *MenuModel) editName(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.config.PlayerName); len(r) > 0 {
			m.config.PlayerName = string(r[:len(r)-1])
		}
		return true
	case tea.KeyRunes, tea.KeySpace:
		name := []rune(m.config.PlayerName)
		for _, r := range msg.Runes {
			if len(name) >= maxNameLen {
				break
			}
			if unicode.IsPrint(r) {
				name = append(name, r)
			}
		}
		m.config.PlayerName = string(name)
		return true
	}
	return false
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.nameRow() {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		m.toggleSetting()

	case MenuActionSelect:
		if m.cursor < len(m.items) {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
		m.toggleSetting()

	case MenuActionResults:
		m.wantsResults = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) toggleSetting() {
	switch m.cursor {
	case m.modeRow():
		next := 0
		for i, mode := range modes {
			if mode == m.config.Mode {
				next = (i + 1) % len(modes)
			}
		}
		m.config.Mode = modes[next]
	case m.easyRow():
		m.config.Easy = !m.config.Easy
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  N E O N   D R I V E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	line := func(row int, text string) {
		cursor := "  "
		style := lipgloss.NewStyle()
		if row == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		b.WriteString(centerText(style.Render(cursor+text), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		line(i, fmt.Sprintf("%-14s %s", item.Title, dimStyle.Render(item.Description)))
	}
	b.WriteString("\n")

	easy := "off"
	if m.config.Easy {
		easy = "on"
	}
	name := m.config.PlayerName
	if m.cursor == m.nameRow() {
		name += "_"
	}
	line(m.modeRow(), "Mode:  "+m.config.Mode)
	line(m.easyRow(), "Easy:  "+easy)
	line(m.nameRow(), "Name:  "+name)

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Left/Right: Change  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected variant, or nil if none selected.
func (m MenuModel) Selected() *registry.Info {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user requested the session results.
func (m MenuModel) WantsResults() bool {
	return m.wantsResults
}

// Config returns the runtime config with the chosen settings.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsResults():
		result.WantsResults = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().ID
	default:
		result.Quit = true
	}
	return result
}
