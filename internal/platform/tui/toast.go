package tui

import (
	"time"

	"github.com/vovakirdan/neon-drive/internal/core"
)

const (
	toastDuration = 1500 * time.Millisecond
	maxToasts     = 3
)

// toast is a short overlay line raised by a game event.
type toast struct {
	text  string
	color core.Color
	until time.Time
}

// eventStyle picks the overlay colour for an event tag and whether it
// rings the terminal bell. Tags without a style raise no toast.
func eventStyle(tag string) (c core.Color, bell, ok bool) {
	switch tag {
	case "penalty":
		return core.ColorBrightRed, true, true
	case "stage-start":
		return core.ColorBrightCyan, false, true
	case "phase-green":
		return core.ColorBrightGreen, true, true
	case "perfect":
		return core.ColorBrightYellow, false, true
	case "stage-clear":
		return core.ColorBrightGreen, false, true
	case "run-finished":
		return core.ColorMagenta, true, true
	}
	return core.ColorDefault, false, false
}

// pushToasts appends toasts for events and reports whether any of them
// rings the bell.
func pushToasts(toasts []toast, events []core.GameEvent, now time.Time) ([]toast, bool) {
	bell := false
	for _, e := range events {
		c, b, ok := eventStyle(e.Tag)
		if !ok || e.Text == "" {
			continue
		}
		bell = bell || b
		toasts = append(toasts, toast{text: e.Text, color: c, until: now.Add(toastDuration)})
	}
	if len(toasts) > maxToasts {
		toasts = toasts[len(toasts)-maxToasts:]
	}
	return toasts, bell
}

// expireToasts drops toasts whose time is up.
func expireToasts(toasts []toast, now time.Time) []toast {
	live := toasts[:0]
	for _, t := range toasts {
		if now.Before(t.until) {
			live = append(live, t)
		}
	}
	return live
}

// drawToasts stacks toasts above the status line, newest lowest.
func drawToasts(s *core.Screen, toasts []toast) {
	y := s.Height() - 3
	for i := len(toasts) - 1; i >= 0 && y > 2; i-- {
		s.DrawTextCentered(y, " "+toasts[i].text+" ", toasts[i].color)
		y--
	}
}
