package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/registry"
	"github.com/vovakirdan/neon-drive/internal/storage"
)

// Results layout constants
const (
	minWidthForCard = 90 // Minimum width to show the last-run card beside the table
	cardWidth       = 36
	maxRuns         = 50
)

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel shows the runs finished this session, fastest first, and
// a card for the most recent one.
type ResultsModel struct {
	variants  []registry.Info
	cursor    int
	store     *storage.Store
	runs      []storage.RunRecord
	last      *core.RunSummary
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	showCard  bool
}

// NewResultsModel creates a results screen. last may be nil.
func NewResultsModel(store *storage.Store, last *core.RunSummary, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false

	m := ResultsModel{
		variants: registry.List(),
		store:    store,
		last:     last,
		keys:     DefaultResultsKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		showCard: last != nil && width >= minWidthForCard,
	}
	if last != nil {
		for i, v := range m.variants {
			if v.ID == last.Variant {
				m.cursor = i
			}
		}
	}

	m.table = m.createTable()
	if len(m.variants) > 0 {
		m.loadRuns(m.variants[m.cursor].ID)
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Driver", Width: 16},
		{Title: "Time", Width: 8},
		{Title: "Pen", Width: 5},
		{Title: "Medal", Width: 13},
		{Title: "Grade", Width: 5},
		{Title: "At", Width: 8},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the session leaderboard for a variant.
func (m *ResultsModel) loadRuns(variant string) {
	m.runs = nil
	if m.store != nil {
		if runs, err := m.store.Leaderboard(variant, maxRuns); err == nil {
			m.runs = runs
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%.2f", r.FinalTime),
			fmt.Sprintf("%.0f", r.Penalty),
			r.Medal,
			r.Grade,
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.loadRuns(m.variants[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor - 1 + len(m.variants)) % len(m.variants)
				m.loadRuns(m.variants[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showCard = m.last != nil && m.width >= minWidthForCard
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "SESSION RESULTS"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("SESSION RESULTS - %s", m.variants[m.cursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if m.showCard {
		card := boxStyle.Width(cardWidth).Render(m.renderCard())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", card))
	} else {
		b.WriteString(tableRendered)
		if m.last != nil {
			b.WriteString("\n")
			b.WriteString(m.renderCard())
		}
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ResultsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs finished this session.\nDrive one to set a time!")
	}
	return m.table.View()
}

// renderCard renders the last run with its tips.
func (m ResultsModel) renderCard() string {
	if m.last == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Render("LAST RUN"))
	b.WriteString("\n")
	b.WriteString(ShareText(*m.last))
	for _, tip := range m.last.Tips {
		b.WriteString("- ")
		b.WriteString(tip)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunResults(store *storage.Store, last *core.RunSummary, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewResultsModel(store, last, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
