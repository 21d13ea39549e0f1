package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-drive/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a steers left", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d steers right", runeKey('d'), core.ActionRight, false},
		{"up is gas", tea.KeyMsg{Type: tea.KeyUp}, core.ActionGas, false},
		{"space brakes", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionBrake, false},
		{"r toggles gear", runeKey('r'), core.ActionGearToggle, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"n restarts", runeKey('n'), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionResults},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
