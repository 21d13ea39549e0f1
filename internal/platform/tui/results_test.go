package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/storage"
)

func TestResultsShowsSessionRuns(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	last := core.RunSummary{Player: "ana", Variant: "drive", Mode: "contest", FinalTime: 72.25, Medal: "BRONZE", Grade: "C", Tips: []string{"Brake earlier"}}
	store.SaveRun(core.RunSummary{Player: "bob", Variant: "drive", FinalTime: 64.1, Medal: "SILVER", Grade: "B"})
	store.SaveRun(last)

	m := NewResultsModel(store, &last, 120, 30)
	if m.variants[m.cursor].ID != "drive" {
		t.Fatalf("cursor on %s, want the last run's variant", m.variants[m.cursor].ID)
	}
	if len(m.runs) != 2 || m.runs[0].Player != "bob" {
		t.Fatalf("runs = %+v, want bob first", m.runs)
	}

	view := m.View()
	for _, want := range []string{"SESSION RESULTS", "64.10", "LAST RUN", "Brake earlier"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsNavigation(t *testing.T) {
	m := NewResultsModel(nil, nil, 80, 24)
	start := m.cursor

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if m.cursor == start && len(m.variants) > 1 {
		t.Error("tab did not switch variant")
	}
	if !strings.Contains(m.View(), "No runs finished") {
		t.Error("empty history should show the placeholder")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ResultsModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("back=%v quit=%v", m.IsGoingBack(), m.IsQuitting())
	}
}
