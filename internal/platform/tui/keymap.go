package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-drive/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a driving action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionGas, false
	case "s", "down", " ":
		return core.ActionBrake, false
	case "r", "g":
		return core.ActionGearToggle, false
	case "enter":
		return core.ActionConfirm, false
	case "n":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// IsHeld reports whether an action is a held control rather than a
// one-shot press.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionGas, core.ActionBrake:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionResults
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionResults
	}
	return MenuActionNone
}
