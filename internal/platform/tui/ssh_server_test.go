package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := NewSessionModel(nil, testConfig())
	m = sessionUpdate(t, m, keyEnter)
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %v, want game after selecting a variant", m.screen)
	}

	m = sessionUpdate(t, m, TickMsg{At: time.Now(), Loop: m.game.loop})
	if m.game.gameState.Phase != "PLAY" {
		t.Errorf("phase = %q, want PLAY", m.game.gameState.Phase)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = sessionUpdate(t, m, TickMsg{At: time.Now(), Loop: m.game.loop})
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("screen = %v quitting=%v, want menu", m.screen, m.quitting)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenResults {
		t.Fatalf("screen = %v, want results", m.screen)
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after leaving results", m.screen)
	}

	m = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
}
