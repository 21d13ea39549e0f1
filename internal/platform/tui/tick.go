// Package tui provides the Bubble Tea host for the driving game.
// It handles the terminal UI loop, input mapping, session history and the
// SSH server. The simulation core never imports it.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that scheduled it, so a tick left over from a closed game
// cannot drive a new one.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick loop identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
