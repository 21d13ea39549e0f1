package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-drive/internal/core"
	_ "github.com/vovakirdan/neon-drive/internal/games/drive"
)

func press(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestMenuSelectsVariant(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	if len(m.items) < 2 {
		t.Fatalf("menu lists %d variants, want both drive variants", len(m.items))
	}

	m = press(m, keyDown, keyEnter)
	res := m.result()
	if res.GameID != m.items[1].ID || res.Quit {
		t.Errorf("result = %+v, want %s", res, m.items[1].ID)
	}
}

func TestMenuSettings(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	down := make([]tea.KeyMsg, len(m.items))
	for i := range down {
		down[i] = keyDown
	}

	m = press(m, down...) // mode row
	m = press(m, keyEnter)
	if m.Config().Mode != "practice" {
		t.Errorf("Mode = %q, want practice", m.Config().Mode)
	}
	m = press(m, keyEnter)
	if m.Config().Mode != "contest" {
		t.Errorf("Mode = %q, want contest after second toggle", m.Config().Mode)
	}

	m = press(m, keyDown, tea.KeyMsg{Type: tea.KeyRight}) // easy row
	if !m.Config().Easy {
		t.Error("Easy not toggled")
	}
}

func TestMenuNameEntry(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.PlayerName = "Dr"
	m := NewMenuModel(cfg)
	m.cursor = m.nameRow()

	m = press(m,
		tea.KeyMsg{Type: tea.KeyBackspace},
		runeKey('q'),
		runeKey('b'),
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
	)
	if got := m.Config().PlayerName; got != "Dqb " {
		t.Errorf("PlayerName = %q, want %q", got, "Dqb ")
	}
	if m.IsQuitting() {
		t.Error("typing q on the name row must not quit")
	}

	long := make([]rune, 40)
	for i := range long {
		long[i] = 'x'
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: long})
	if n := len([]rune(m.Config().PlayerName)); n != maxNameLen {
		t.Errorf("name length = %d, want %d", n, maxNameLen)
	}
}

func TestMenuResultsAndQuit(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if res := m.result(); !res.WantsResults {
		t.Errorf("result = %+v, want results", res)
	}

	m = press(NewMenuModel(core.DefaultConfig()), runeKey('q'))
	if res := m.result(); !res.Quit {
		t.Errorf("result = %+v, want quit", res)
	}
}
