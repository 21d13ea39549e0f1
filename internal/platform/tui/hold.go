package tui

import (
	"time"

	"github.com/vovakirdan/neon-drive/internal/core"
)

// Terminals report key presses but not releases. A held key arrives as a
// first press, a pause of a few hundred milliseconds, then a stream of
// auto-repeats. A control counts as held until its window runs out
// without a new press.
const (
	firstPressWindow = 350 * time.Millisecond
	repeatWindow     = 120 * time.Millisecond
)

// opposite controls cancel each other on press.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionGas:   core.ActionBrake,
	core.ActionBrake: core.ActionGas,
}

// holdTracker turns key presses into held controls and one-shot actions.
type holdTracker struct {
	until   map[core.Action]time.Time
	pending []core.Action
}

func newHoldTracker() *holdTracker {
	return &holdTracker{until: make(map[core.Action]time.Time)}
}

// Press records a key press at now.
func (h *holdTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !IsHeld(a) {
		h.pending = append(h.pending, a)
		return
	}
	if o, ok := opposite[a]; ok {
		delete(h.until, o)
	}
	window := firstPressWindow
	if exp, ok := h.until[a]; ok && now.Before(exp) {
		window = repeatWindow
	}
	h.until[a] = now.Add(window)
}

// Frame builds the input for one tick: every control still inside its
// window plus the one-shot actions pressed since the last frame.
func (h *holdTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, exp := range h.until {
		if now.Before(exp) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for _, a := range h.pending {
		frame.Set(a)
	}
	h.pending = h.pending[:0]
	return frame
}

// Reset releases every control.
func (h *holdTracker) Reset() {
	clear(h.until)
	h.pending = h.pending[:0]
}
