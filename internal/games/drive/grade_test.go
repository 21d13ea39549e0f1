package drive

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-drive/internal/config"
)

func TestMedalAndGrade(t *testing.T) {
	sc := config.DefaultDriveConfig().Scoring

	tests := []struct {
		time, pen   float64
		medal, grad string
	}{
		{55, 0, "GOLD", "A"},
		{59.99, 3, "GOLD", "A"},
		{60, 3, "SILVER", "B"},
		{70, 8, "SILVER", "B"},
		{50, 9, "BRONZE", "C"},
		{90, 14, "BRONZE", "C"},
		{94, 20, "BRONZE", "D"},
		{95, 0, "PARTICIPATION", "C"},
		{120, 30, "PARTICIPATION", "D"},
	}

	for _, tt := range tests {
		if got := Medal(sc, tt.time, tt.pen); got != tt.medal {
			t.Errorf("Medal(%v, %v) = %q, want %q", tt.time, tt.pen, got, tt.medal)
		}
		if got := Grade(sc, tt.time, tt.pen); got != tt.grad {
			t.Errorf("Grade(%v, %v) = %q, want %q", tt.time, tt.pen, got, tt.grad)
		}
	}
}

func tierIndex(tiers []config.Tier, name string) int {
	for i, t := range tiers {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func TestTiersMonotonic(t *testing.T) {
	sc := config.DefaultDriveConfig().Scoring

	for _, ladder := range [][]config.Tier{sc.Medals, sc.Grades} {
		for pen := 0.0; pen <= 20; pen += 0.5 {
			for tm := 0.0; tm <= 120; tm += 0.5 {
				here := tierIndex(ladder, rank(ladder, tm, pen))
				lowerPen := tierIndex(ladder, rank(ladder, tm, pen-0.5))
				lowerTime := tierIndex(ladder, rank(ladder, tm-0.5, pen))
				if lowerPen > here {
					t.Errorf("lower penalty worsened tier at t=%v pen=%v", tm, pen)
				}
				if lowerTime > here {
					t.Errorf("lower time worsened tier at t=%v pen=%v", tm, pen)
				}
			}
		}
	}
}

func TestMissionPool(t *testing.T) {
	sc := config.DefaultDriveConfig().Scoring
	pool := MissionPool(sc)
	if len(pool) != 6 {
		t.Fatalf("pool size = %d, want 6", len(pool))
	}

	byID := make(map[string]Mission)
	for _, m := range pool {
		byID[m.ID] = m
	}

	tests := []struct {
		id    string
		stats RunStats
		want  bool
	}{
		{"clean", RunStats{}, true},
		{"clean", RunStats{ConeHits: 1}, false},
		{"noCone", RunStats{WallHits: 2}, true},
		{"noWall", RunStats{WallHits: 1}, false},
		{"fast", RunStats{FinalTime: 69.9}, true},
		{"fast", RunStats{FinalTime: 70}, false},
		{"precision", RunStats{PrecisionPenalty: 2}, true},
		{"precision", RunStats{PrecisionPenalty: 3}, false},
		{"noFalse", RunStats{FalseStarts: 1}, false},
	}
	for _, tt := range tests {
		m, ok := byID[tt.id]
		if !ok {
			t.Fatalf("mission %q missing", tt.id)
		}
		if got := m.Check(tt.stats); got != tt.want {
			t.Errorf("%s.Check(%+v) = %v, want %v", tt.id, tt.stats, got, tt.want)
		}
	}
}

func TestPickMissionDeterministic(t *testing.T) {
	sc := config.DefaultDriveConfig().Scoring
	a := pickMission(rand.New(rand.NewSource(4)), sc)
	b := pickMission(rand.New(rand.NewSource(4)), sc)
	if a.ID != b.ID {
		t.Errorf("same seed picked %q and %q", a.ID, b.ID)
	}
}

func TestEvaluateMissionNil(t *testing.T) {
	res := evaluateMission(nil, RunStats{})
	if res.Evaluated || res.Passed || res.Label != "-" {
		t.Errorf("nil mission = %+v, want not evaluated", res)
	}
}

func TestTips(t *testing.T) {
	fast := &Mission{ID: "fast"}

	if got := Tips(RunStats{}, nil, false); len(got) != 1 {
		t.Errorf("clean run tips = %v, want the single encouragement", got)
	}
	got := Tips(RunStats{FalseStarts: 1, ConeHits: 2, WallHits: 1, PrecisionPenalty: 1}, fast, false)
	if len(got) != 5 {
		t.Errorf("tips = %v, want 5", got)
	}
	if got := Tips(RunStats{}, fast, true); len(got) != 1 {
		t.Errorf("passed fast mission tips = %v", got)
	}
}
