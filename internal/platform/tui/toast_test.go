package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-drive/internal/core"
)

func TestPushToastsKeepsNewest(t *testing.T) {
	now := time.Unix(1000, 0)
	var events []core.GameEvent
	for _, text := range []string{"a", "b", "c", "d"} {
		events = append(events, core.GameEvent{Tag: "stage-start", Text: text})
	}

	toasts, bell := pushToasts(nil, events, now)
	if bell {
		t.Error("stage-start should not ring the bell")
	}
	if len(toasts) != maxToasts || toasts[0].text != "b" || toasts[maxToasts-1].text != "d" {
		t.Errorf("toasts = %+v", toasts)
	}
}

func TestExpireToasts(t *testing.T) {
	now := time.Unix(1000, 0)
	toasts := []toast{
		{text: "old", until: now},
		{text: "new", until: now.Add(time.Second)},
	}
	live := expireToasts(toasts, now)
	if len(live) != 1 || live[0].text != "new" {
		t.Errorf("live = %+v", live)
	}
}

func TestDrawToasts(t *testing.T) {
	s := core.NewScreen(40, 10)
	drawToasts(s, []toast{{text: "first"}, {text: "second"}})
	if row := s.Row(7); !strings.Contains(row, "second") {
		t.Errorf("row 7 = %q, want newest toast", row)
	}
	if row := s.Row(6); !strings.Contains(row, "first") {
		t.Errorf("row 6 = %q, want older toast", row)
	}
}
